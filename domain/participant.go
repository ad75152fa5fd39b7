// Package domain contains core concepts of the matchmaking chat system.
// This file defines participant identity. Participants are not modeled
// beyond their opaque id; no runtime, network, or UI logic belongs here.
package domain

// ParticipantID identifies a customer or an agent.
type ParticipantID int

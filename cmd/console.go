package main

import (
	"bufio"
	"context"
	"cx-chat/domain"
	"cx-chat/gateway"
	"cx-chat/services"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gookit/color"
)

// console is a line-based operator surface over the gateway. One process
// can impersonate several participants, which makes it handy for local
// matchmaking experiments.
type console struct {
	gw      *gateway.Gateway
	service services.IChatService
	mu      sync.Mutex
	drains  map[domain.ParticipantID]func()
}

func newConsole(gw *gateway.Gateway, service services.IChatService) *console {
	return &console{gw: gw, service: service, drains: make(map[domain.ParticipantID]func())}
}

func (c *console) run(ctx context.Context, in io.Reader) {
	fmt.Println(color.New(color.FgCyan).Render(
		"Commands: join <id> <CUSTOMER|AGENT> | chat <id> <session> <text> | leave <id> <session> | history <session> | find <query> | stats | quit"))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}
		if err := c.handle(ctx, line); err != nil {
			fmt.Println(color.New(color.FgRed).Render(err.Error()))
		}
	}
}

func (c *console) handle(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "join":
		if len(fields) != 3 {
			return fmt.Errorf("usage: join <id> <CUSTOMER|AGENT>")
		}
		id, _ := strconv.Atoi(fields[1])
		c.ensureConnected(ctx, domain.ParticipantID(id))
		return c.gw.HandleJoin(gateway.JoinFrame{Participant: id, Role: fields[2]})
	case "chat":
		if len(fields) < 4 {
			return fmt.Errorf("usage: chat <id> <session> <text>")
		}
		id, _ := strconv.Atoi(fields[1])
		session, _ := strconv.ParseInt(fields[2], 10, 64)
		return c.gw.HandleChat(gateway.ChatFrame{
			Session:     session,
			Participant: id,
			Content:     strings.Join(fields[3:], " "),
		})
	case "leave":
		if len(fields) != 3 {
			return fmt.Errorf("usage: leave <id> <session>")
		}
		id, _ := strconv.Atoi(fields[1])
		session, _ := strconv.ParseInt(fields[2], 10, 64)
		return c.gw.HandleLeave(gateway.LeaveFrame{Session: session, Participant: id})
	case "history":
		if len(fields) != 2 {
			return fmt.Errorf("usage: history <session>")
		}
		session, _ := strconv.ParseInt(fields[1], 10, 64)
		messages, _, err := c.gw.HandleTranscript(gateway.TranscriptRequest{Session: session})
		if err != nil {
			return err
		}
		for _, m := range messages {
			fmt.Printf("[%s] %d: %s\n", m.CreatedAt.Format("15:04:05"), m.SenderID, m.Content)
		}
		return nil
	case "find":
		hits, err := c.gw.HandleSearch(ctx, gateway.SearchRequest{Query: strings.Join(fields[1:], " ")})
		if err != nil {
			return err
		}
		for _, h := range hits {
			fmt.Printf("session %d: %s\n", h.Session, h.Content)
		}
		return nil
	case "stats":
		stats := c.service.Stats()
		line := fmt.Sprintf("matches=%d waiting_customers=%d waiting_agents=%d live=%d relayed=%d dropped=%d",
			stats.MatchesMade, stats.WaitingCustomers, stats.WaitingAgents,
			stats.LiveSessions, stats.MessagesRelayed, stats.MessagesDropped)
		fmt.Println(color.New(color.FgGreen).Render(line))
		return nil
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

// ensureConnected attaches the participant once and starts draining its
// private queue to the terminal.
func (c *console) ensureConnected(ctx context.Context, id domain.ParticipantID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.drains[id]; ok {
		return
	}
	queue := c.gw.Connect(id)
	drainCtx, cancel := context.WithCancel(ctx)
	c.drains[id] = cancel

	go func() {
		for {
			select {
			case <-drainCtx.Done():
				return
			case evt := <-queue.Events:
				frame, ok := gateway.ToFrame(evt)
				if !ok {
					continue
				}
				printFrame(id, frame)
			}
		}
	}()
}

func printFrame(id domain.ParticipantID, frame gateway.OutboundFrame) {
	switch frame.Kind {
	case gateway.KindMatched:
		line := fmt.Sprintf("[%d] matched in session %d with %d", id, frame.Session, frame.Partner)
		fmt.Println(color.New(color.FgGreen).Render(line))
	case gateway.KindWaiting:
		line := fmt.Sprintf("[%d] waiting for a partner", id)
		fmt.Println(color.New(color.FgYellow).Render(line))
	case gateway.KindMessage:
		fmt.Printf("[%d] session %d, %d says: %s\n", id, frame.Session, frame.Author, frame.Content)
	case gateway.KindSessionEnd:
		line := fmt.Sprintf("[%d] session %d ended by %d", id, frame.Session, frame.Author)
		fmt.Println(color.New(color.FgMagenta).Render(line))
	}
}

package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SyncCommand is full catalog synchronization command.
type SyncCommand struct {
	ActorID   int64  `json:"actorId"`
	ActorName string `json:"actorName"`
	// SheetURLs maps category name to its published sheet export URL.
	SheetURLs map[string]string `json:"sheetUrls"`
	// ArchiveKeys maps category name to its staged archive object key.
	// Categories without an entry keep their stored images untouched.
	ArchiveKeys map[string]string `json:"archiveKeys,omitempty"`
}

// SyncCommander sends synchronization commands.
type SyncCommander struct {
	sender Sender
}

// NewSyncCommander returns new SyncCommander using provided sender for sending messages.
func NewSyncCommander(sender Sender) SyncCommander {
	return SyncCommander{
		sender: sender,
	}
}

// SendSyncCommand sends provided synchronization command.
func (c SyncCommander) SendSyncCommand(ctx context.Context, cmd SyncCommand) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal sync command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/frahmantamala/hr-records/internal/core/events"
	"github.com/frahmantamala/hr-records/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event management commands",
	Long:  `Manage record-change events: publish test events through the audit subscriber`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish [resource] [action]",
	Short: "Publish a test record-change event",
	Long:  `Publish a record-change event to the event bus for testing and debugging, e.g. "event publish worker updated --id 7"`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return publishTestEvent(cmd.Context(), args[0], events.Action(args[1]))
	},
}

var (
	eventRecordID int64
	eventActor    string
)

func publishTestEvent(ctx context.Context, resource string, action events.Action) error {
	switch action {
	case events.ActionCreated, events.ActionUpdated, events.ActionDeleted:
	default:
		return fmt.Errorf("unknown action %q", action)
	}

	log := logger.LoggerWrapper()
	eventBus := events.NewEventBus(log)
	eventBus.Subscribe(events.Wildcard, auditLogHandler(log))

	event := events.NewRecordChanged(resource, action, eventRecordID, eventActor)
	log.Info("publishing test event", "event_type", event.EventType(), "event_id", event.EventID())

	if ctx == nil {
		ctx = context.Background()
	}
	if err := eventBus.PublishSync(ctx, event); err != nil {
		log.Error("failed to publish event", "error", err)
		return err
	}

	log.Info("test event published successfully")
	return nil
}

func init() {
	publishEventCmd.Flags().Int64Var(&eventRecordID, "id", 1, "Record id carried by the event")
	publishEventCmd.Flags().StringVar(&eventActor, "actor", "cli-command", "Actor recorded on the event")

	eventCmd.AddCommand(publishEventCmd)

	rootCmd.AddCommand(eventCmd)
}

/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/devfolio/apiserver/config"
	"github.com/devfolio/apiserver/internal/notify"
	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/types"
	"github.com/spf13/cobra"
)

// listenCmd tails contact-message events from the configured broker so
// the site owner sees new messages as they arrive.
var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Print contact messages as they are submitted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		var backend notify.Backend
		switch cfg.Notifier.Backend {
		case "rabbitmq":
			b, err := notify.NewRabbitMQBackend(cfg.Notifier.RabbitMQ)
			if err != nil {
				return err
			}
			backend = b
		case "pubsub":
			b, err := notify.NewPubSubBackend(cmd.Context(), cfg.Notifier.PubSub)
			if err != nil {
				return err
			}
			backend = b
		default:
			return errors.New("NOTIFIER_BACKEND must be rabbitmq or pubsub")
		}

		notifier := notify.New(backend)
		defer notifier.Close()

		return notifier.Subscribe(cmd.Context(), services.ContactChannel, func(_ context.Context, event notify.Event) error {
			var message types.ContactMessage
			if err := json.Unmarshal(event.Data, &message); err != nil {
				fmt.Printf("unreadable event %s: %v\n", event.ID, err)
				return nil
			}
			fmt.Printf("[%s] %s <%s>: %s\n", message.CreatedAt.Format("2006-01-02 15:04"), message.Name, message.Email, message.Message)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
}

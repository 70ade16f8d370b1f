package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/deepdetect/internal/app"
	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/forum"
)

var (
	sendTopic    string
	sendEmail    string
	sendCategory string
	sendMessage  string
)

// sendCmd posts to the forum without starting the UI.
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Post a message to the community forum",
	Long: `Composes a forum post exactly as the forum form does and relays it once.

Example:
  deepdetect send --category disease --topic "Late blight" --message "Seeing lesions on leaves"`,
	Args: cobra.NoArgs,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendTopic, "topic", "", "topic title (defaults to forum.default_subject)")
	sendCmd.Flags().StringVar(&sendEmail, "email", "", "contact email for replies")
	sendCmd.Flags().StringVar(&sendCategory, "category", "all", "forum category id")
	sendCmd.Flags().StringVarP(&sendMessage, "message", "m", "", "message body")
}

func runSend(cmd *cobra.Command, args []string) error {
	c, err := content.Load()
	if err != nil {
		return err
	}
	if !knownCategory(c, sendCategory) {
		return fmt.Errorf("unknown category %q", sendCategory)
	}

	sender, creds, err := relayDeps()
	if err != nil {
		return err
	}
	journal := openJournal()
	if journal != nil {
		defer journal.Close()
	}

	machine := forum.New(creds, forum.Defaults{
		Subject:         cfg.Forum.DefaultSubject,
		AnonymousSender: cfg.Forum.AnonymousSender,
		Recipient:       cfg.Forum.RecipientEmail,
	})
	machine.TopicTitle = sendTopic
	machine.ContactEmail = sendEmail
	machine.Category = sendCategory
	machine.Message = sendMessage

	err = machine.Submit(cmd.Context(), app.Journaled(sender, journal, cfg.Relay.Backend, logger))
	fmt.Fprintln(cmd.OutOrStdout(), machine.Notice())

	switch {
	case err == nil:
		return nil
	case errors.Is(err, forum.ErrConfigMissing):
		return fmt.Errorf("%w: set EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and EMAILJS_PUBLIC_KEY", err)
	default:
		return err
	}
}

func knownCategory(c *content.Store, id string) bool {
	for _, cat := range c.ForumCategories() {
		if cat.ID == id {
			return true
		}
	}
	return false
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nhle/deepdetect/internal/credential"
	"github.com/nhle/deepdetect/internal/relay"
)

// keyringCmd manages the EmailJS public key in the system keyring.
var keyringCmd = &cobra.Command{
	Use:   "keyring",
	Short: "Manage the EmailJS public key in the system keyring",
	Long: `The public key is read from the environment or the config file first.
When neither sets it, the keyring entry "` + relay.PublicKeyCredential + `" is used.`,
}

var keyringSetCmd = &cobra.Command{
	Use:   "set [public-key]",
	Short: "Store the public key (prompts when not given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			err := huh.NewInput().
				Title("EmailJS public key").
				EchoMode(huh.EchoModePassword).
				Value(&key).
				Run()
			if err != nil {
				return err
			}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return errors.New("public key is empty")
		}
		if err := credential.Set(relay.PublicKeyCredential, key); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Public key stored.")
		return nil
	},
}

var keyringDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the stored public key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := credential.Delete(relay.PublicKeyCredential); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Public key removed.")
		return nil
	},
}

var keyringStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a public key is stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := credential.Get(relay.PublicKeyCredential)
		switch {
		case err == nil:
			fmt.Fprintln(cmd.OutOrStdout(), "A public key is stored in the keyring.")
		case errors.Is(err, credential.ErrNotFound):
			fmt.Fprintln(cmd.OutOrStdout(), "No public key is stored in the keyring.")
		default:
			return err
		}
		return nil
	},
}

func init() {
	keyringCmd.AddCommand(keyringSetCmd, keyringDeleteCmd, keyringStatusCmd)
}

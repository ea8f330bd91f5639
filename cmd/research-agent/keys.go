package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/api"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys",
	}
	cmd.PersistentFlags().String("keys-file", "", "Key store path (defaults to the configured api.keys_file)")

	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Mint a new API key; the secret is shown once",
		Args:  cobra.ExactArgs(1),
		RunE:  runKeysCreate,
	}
	create.Flags().Bool("admin", false, "Grant key management rights")

	list := &cobra.Command{
		Use:   "list",
		Short: "List keys with masked secrets and usage counters",
		Args:  cobra.NoArgs,
		RunE:  runKeysList,
	}

	revoke := &cobra.Command{
		Use:   "revoke ID",
		Short: "Permanently revoke a key by ID",
		Args:  cobra.ExactArgs(1),
		RunE:  runKeysRevoke,
	}

	cmd.AddCommand(create, list, revoke)
	return cmd
}

// openKeyStore resolves the key store path from the flag or configuration.
func openKeyStore(cmd *cobra.Command) (*api.KeyStore, error) {
	path, _ := cmd.Flags().GetString("keys-file")
	if path == "" {
		configDir, _ := cmd.Flags().GetString("config-dir")
		loadDotEnv(configDir)
		cfg, err := config.Initialize(cmd.Context(), configDir)
		if err != nil {
			return nil, err
		}
		path = cfg.Settings.API.KeysFile
	}
	return api.NewKeyStore(path)
}

func runKeysCreate(cmd *cobra.Command, args []string) error {
	admin, _ := cmd.Flags().GetBool("admin")
	store, err := openKeyStore(cmd)
	if err != nil {
		return err
	}

	key, err := store.Create(args[0], admin)
	if err != nil {
		return err
	}
	fmt.Printf("Created key %s (%s, admin=%t)\n", key.ID, key.Name, key.Admin)
	color.New(color.Bold).Printf("Secret: %s\n", key.Key)
	color.Yellow("Store it now; it will not be shown again.")
	return nil
}

func runKeysList(cmd *cobra.Command, _ []string) error {
	store, err := openKeyStore(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKEY\tADMIN\tREVOKED\tREQUESTS\tSESSIONS\tCOST_USD")
	for _, k := range store.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%d\t%d\t%.4f\n",
			k.ID, k.Name, k.Key, k.Admin, k.Revoked, k.Requests, k.SessionsStarted, k.CostUSD)
	}
	return w.Flush()
}

func runKeysRevoke(cmd *cobra.Command, args []string) error {
	store, err := openKeyStore(cmd)
	if err != nil {
		return err
	}

	if err := store.Revoke(args[0]); err != nil {
		return err
	}
	fmt.Printf("Revoked key %s\n", args[0])
	return nil
}

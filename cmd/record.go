// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	httpEndpoint string
	accountID    string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Inspect service member records over the HTTP API",
}

var listRecordsCmd = &cobra.Command{
	Use:   "list",
	Short: "List records accessible to the acting account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var records []recordView
		if err := apiGet("/api/v0/service-members", &records); err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tBRANCH\tCOMPONENT\tSUBJECT\tCREATED_AT")
		for _, r := range records {
			subject := r.SubjectAccountID
			if subject == "" {
				subject = "(unclaimed)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Branch, r.Component, subject, r.CreatedAt.Format(time.RFC3339))
		}
		w.Flush()
		return nil
	},
}

var getRecordCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a record by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var record json.RawMessage
		if err := apiGet("/api/v0/service-members/"+args[0], &record); err != nil {
			return fmt.Errorf("failed to get record: %w", err)
		}

		var pretty map[string]interface{}
		if err := json.Unmarshal(record, &pretty); err != nil {
			return err
		}
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var dashboardRecordCmd = &cobra.Command{
	Use:   "dashboard [id]",
	Short: "Get the readiness dashboard for a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cards json.RawMessage
		if err := apiGet("/api/v0/service-members/"+args[0]+"/dashboard", &cards); err != nil {
			return fmt.Errorf("failed to get dashboard: %w", err)
		}

		out, err := json.MarshalIndent(cards, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

type recordView struct {
	ID               string    `json:"id"`
	Branch           string    `json:"branch"`
	Component        string    `json:"component"`
	SubjectAccountID string    `json:"subject_account_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func apiGet(path string, out interface{}) error {
	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	req, err := http.NewRequest(http.MethodGet, endpoint+path, nil)
	if err != nil {
		return err
	}
	if accountID != "" {
		req.Header.Set("X-Authenticated-Account-Id", accountID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&accountID, "account-id", "", "Account ID for impersonation")

	recordCmd.AddCommand(listRecordsCmd)
	recordCmd.AddCommand(getRecordCmd)
	recordCmd.AddCommand(dashboardRecordCmd)
	rootCmd.AddCommand(recordCmd)
}

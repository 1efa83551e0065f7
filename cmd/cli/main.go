package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mehedihasanmondol/online-plan-pilot/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planpilot-cli",
		Short: "Payroll orchestration CLI tool",
		Long:  `A command line interface for the payroll payment orchestration API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the payroll API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(newPayrollCmd())
	rootCmd.AddCommand(newLedgerCmd())
	rootCmd.AddCommand(newReconcileCmd())
	rootCmd.AddCommand(newMigrateCmd())

	return rootCmd
}

func newPayrollCmd() *cobra.Command {
	payrollCmd := &cobra.Command{
		Use:   "payroll",
		Short: "Payroll operations",
	}

	var (
		workerID    string
		periodStart string
		periodEnd   string
		deductions  string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payroll record from approved hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/payrolls", map[string]any{
				"worker_id":    workerID,
				"period_start": periodStart,
				"period_end":   periodEnd,
				"deductions":   deductions,
			})
		},
	}
	createCmd.Flags().StringVar(&workerID, "worker", "", "Worker ID (required)")
	createCmd.Flags().StringVar(&periodStart, "period-start", "", "Period start, RFC3339 (required)")
	createCmd.Flags().StringVar(&periodEnd, "period-end", "", "Period end, RFC3339 (required)")
	createCmd.Flags().StringVar(&deductions, "deductions", "0", "Deductions amount")
	_ = createCmd.MarkFlagRequired("worker")
	_ = createCmd.MarkFlagRequired("period-start")
	_ = createCmd.MarkFlagRequired("period-end")

	approveCmd := &cobra.Command{
		Use:   "approve <payroll-id>",
		Short: "Approve a pending payroll record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/payrolls/"+args[0]+"/approve", nil)
		},
	}

	var bankAccountID string

	payCmd := &cobra.Command{
		Use:   "pay <payroll-id>",
		Short: "Pay an approved payroll record from a bank account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postAndPrint("/api/v1/payrolls/"+args[0]+"/pay", map[string]any{
				"bank_account_id": bankAccountID,
			})
		},
	}
	payCmd.Flags().StringVar(&bankAccountID, "account", "", "Bank account to disburse from (required)")
	_ = payCmd.MarkFlagRequired("account")

	getCmd := &cobra.Command{
		Use:   "get <payroll-id>",
		Short: "Show a payroll record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/payrolls/" + args[0])
		},
	}

	payrollCmd.AddCommand(createCmd, approveCmd, payCmd, getCmd)

	return payrollCmd
}

func newLedgerCmd() *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, status, err := doRequest(http.MethodGet, "/api/v1/ledger/consistency", nil)
			if err != nil {
				return err
			}

			if status != http.StatusOK {
				fmt.Printf("Consistency check FAILED (Status: %d)\n", status)
				printJSON(body)
				os.Exit(1)
			}

			fmt.Printf("Consistency check PASSED\n")
			printJSON(body)
			return nil
		},
	}

	ledgerCmd.AddCommand(consistencyCmd)

	return ledgerCmd
}

func newReconcileCmd() *cobra.Command {
	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconciliation operations",
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Full reconciliation report across all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/reconciliation/report")
		},
	}

	accountCmd := &cobra.Command{
		Use:   "account <account-id>",
		Short: "Reconcile a single account against its ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/accounts/" + args[0] + "/reconciliation")
		},
	}

	orphansCmd := &cobra.Command{
		Use:   "orphans",
		Short: "List salary withdrawals without a paid payroll record",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/reconciliation/orphans")
		},
	}

	reconcileCmd.AddCommand(reportCmd, accountCmd, orphansCmd)

	return reconcileCmd
}

func newMigrateCmd() *cobra.Command {
	var (
		databaseURL    string
		migrationsPath string
	)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema migrations",
	}

	migrateCmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL URL")
	migrateCmd.PersistentFlags().StringVar(&migrationsPath, "migrations", "migrations", "Path to migration files")

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.RunMigrations(databaseURL, migrationsPath)
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.RunMigrationsDown(databaseURL, migrationsPath)
		},
	}

	migrateCmd.AddCommand(upCmd, downCmd)

	return migrateCmd
}

// doRequest performs an API call and decodes the JSON response.
func doRequest(method, path string, payload any) (map[string]any, int, error) {
	client := &http.Client{Timeout: timeout}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		return nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	var body map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, resp.StatusCode, fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return body, resp.StatusCode, nil
}

func getAndPrint(path string) error {
	body, status, err := doRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	if status >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status %d): %v", status, body)
	}

	printJSON(body)
	return nil
}

func postAndPrint(path string, payload any) error {
	body, status, err := doRequest(http.MethodPost, path, payload)
	if err != nil {
		return err
	}

	if status >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status %d): %v", status, body)
	}

	printJSON(body)
	return nil
}

func printJSON(v any) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(encoded))
}

/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"bitbucket.org/Amartha/go-payment-instruction/internal/common/validation"
	"bitbucket.org/Amartha/go-payment-instruction/internal/config"
	"bitbucket.org/Amartha/go-payment-instruction/internal/models"
	"bitbucket.org/Amartha/go-payment-instruction/internal/services"
	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "instructionctl",
	Short: "Offline tool to parse and price payment instructions",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringP(processCmdInstruction, "i", "", "instruction text")
	processCmd.MarkFlagRequired(processCmdInstruction)
	processCmd.Flags().StringP(processCmdAccounts, "a", "", "path to a JSON file holding the account snapshot")
}

var (
	processCmd = &cobra.Command{
		Use:     "process",
		Short:   "Process a single payment instruction against an account snapshot",
		Long:    ``,
		Example: `instructionctl process -i="DEBIT 500 USD FROM ACCOUNT a FOR CREDIT TO ACCOUNT b" -a=accounts.json`,
		Run:     processInstruction,
	}
	processCmdInstruction = "instruction"
	processCmdAccounts    = "accounts"
)

func processInstruction(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	xlog.Init("instructionctl")

	instruction, _ := ccmd.Flags().GetString(processCmdInstruction)
	accountsPath, _ := ccmd.Flags().GetString(processCmdAccounts)

	input := struct {
		Instruction  string `json:"instruction" validate:"required"`
		AccountsPath string `json:"accounts" validate:"omitempty,noStartEndSpaces"`
	}{
		Instruction:  instruction,
		AccountsPath: accountsPath,
	}
	if err := validation.ValidateStruct(input); err != nil {
		xlog.Fatalf(ctx, "invalid input: %v", err)
	}

	var accounts []models.AccountSnapshot
	if accountsPath != "" {
		raw, err := os.ReadFile(accountsPath)
		if err != nil {
			xlog.Fatalf(ctx, "failed to read accounts file: %v", err)
		}
		if err := json.Unmarshal(raw, &accounts); err != nil {
			xlog.Fatalf(ctx, "failed to parse accounts file: %v", err)
		}
	}

	srv := services.New(config.Config{}, nil, time.Now)
	result, _ := srv.Instruction.Process(ctx, models.ProcessPaymentInstructionRequest{
		Instruction: instruction,
		Accounts:    accounts,
	})

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		xlog.Fatalf(ctx, "failed to render result: %v", err)
	}
	fmt.Println(string(out))

	if result.Status == models.ResultStatusFailed {
		os.Exit(1)
	}
}

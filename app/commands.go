/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package app

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const stdinEvent = "-"

func NewRootCommand() *cobra.Command {
	return newRootCommand(afero.NewOsFs())
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "receipt-reader",
		Short: "Receipt reader",
		Long: `receipt-reader sends receipts uploaded to S3 to Textract.

Without a sub-command it runs as an AWS Lambda function handler.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile == "" {
				return nil
			}

			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return StartLambda(fs)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file loaded before reading the configuration")

	rootCmd.AddCommand(newLambdaCommand(fs), newWorkerCommand(fs), newInvokeCommand(fs))

	return rootCmd
}

func newLambdaCommand(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Run as an AWS Lambda function handler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return StartLambda(fs)
		},
	}
}

func newWorkerCommand(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume S3 notifications from SQS and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return StartWorker(cmd.Context(), fs)
		},
	}
}

func newInvokeCommand(fs afero.Fs) *cobra.Command {
	var eventPath string

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Handle a single event and print the response",
		Example: `  receipt-reader invoke --event resources/testfiles/s3_put_event.json
  echo '{"Records":[]}' | receipt-reader invoke --event -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var event []byte
			var err error

			if eventPath == stdinEvent {
				event, err = io.ReadAll(cmd.InOrStdin())
			} else {
				event, err = afero.ReadFile(fs, eventPath)
			}
			if err != nil {
				return fmt.Errorf("failed to read event: %w", err)
			}

			return Invoke(cmd.Context(), fs, event, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&eventPath, "event", stdinEvent, "event file, - reads from stdin")

	return cmd
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"askdoc/src/core/chunking"
	"askdoc/src/core/chunking/miniostore"
)

var (
	askQuestion string
	askDocument string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Run the chunking pipeline once from the command line",
	Long: `Ask a question against the active document without going through the
HTTP server. The pipeline reuses a cached chunk set when one exists and
splits the document on a cache miss, exactly as the server does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := requireBucket()
		if err != nil {
			return err
		}

		minioService, err := newMinioService()
		if err != nil {
			return fmt.Errorf("failed to create minio service: %w", err)
		}

		document := askDocument
		if document == "" {
			document = viper.GetString("document.key")
		}

		store := miniostore.NewStore(minioService, bucket)
		splitter := chunking.NewSplitter(
			viper.GetInt("chunking.size"),
			viper.GetInt("chunking.overlap"),
		)
		pipeline := chunking.NewService(store, store, splitter)

		result, err := pipeline.Process(context.Background(), document, askQuestion)
		if err != nil {
			return err
		}

		fmt.Println("-------------------")
		fmt.Println(result.Answer)
		fmt.Println("-------------------")
		fmt.Printf("document: %s\nchunks: %d\ncached: %t\n", result.DocumentKey, result.ChunkCount, result.Cached)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	// Add flags
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "Question to send through the pipeline (required)")
	askCmd.Flags().StringVarP(&askDocument, "document", "d", "", "Document key (defaults to document.key)")

	// Mark flags as required
	askCmd.MarkFlagRequired("question")
}

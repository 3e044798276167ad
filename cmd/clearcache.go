package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"askdoc/src/core/chunking"
)

var clearDocument string

// clearCacheCmd represents the clear-cache command
var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Delete the cached chunk set for a document",
	Long: `Delete the persisted chunk set so the next request re-splits the
document. The pipeline never invalidates cache entries on its own, so
run this after replacing a document. Deleting an absent entry is not an
error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := requireBucket()
		if err != nil {
			return err
		}

		minioService, err := newMinioService()
		if err != nil {
			return fmt.Errorf("failed to create minio service: %w", err)
		}

		document := clearDocument
		if document == "" {
			document = viper.GetString("document.key")
		}
		cacheKey := chunking.CacheKey(document)

		if err := minioService.DeleteObject(context.Background(), bucket, cacheKey); err != nil {
			return err
		}

		fmt.Printf("cleared chunk cache for %s (%s/%s)\n", document, bucket, cacheKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCacheCmd)

	// Add flags
	clearCacheCmd.Flags().StringVarP(&clearDocument, "document", "d", "", "Document key (defaults to document.key)")
}

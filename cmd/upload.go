package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	uploadFile string
	uploadKey  string
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a document to the storage bucket",
	Long: `Upload a local file into the storage bucket so the pipeline can read
it. By default the file is stored at the active document key; pass --key
to store it somewhere else. Uploading does not clear an existing chunk
cache entry, run clear-cache afterwards when replacing a document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := requireBucket()
		if err != nil {
			return err
		}

		minioService, err := newMinioService()
		if err != nil {
			return fmt.Errorf("failed to create minio service: %w", err)
		}

		ctx := context.Background()
		if err := minioService.EnsureBucketExists(ctx, bucket); err != nil {
			return err
		}

		f, err := os.Open(uploadFile)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", uploadFile, err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", uploadFile, err)
		}

		key := uploadKey
		if key == "" {
			key = viper.GetString("document.key")
		}

		bar := progressbar.DefaultBytes(info.Size(), "uploading")
		reader := io.TeeReader(f, bar)

		if err := minioService.PutObjectStream(ctx, bucket, key, reader, info.Size(), "text/plain"); err != nil {
			return err
		}

		fmt.Printf("uploaded %s to %s/%s (%d bytes)\n", filepath.Base(uploadFile), bucket, key, info.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	// Add flags
	uploadCmd.Flags().StringVarP(&uploadFile, "file", "f", "", "Path of the file to upload (required)")
	uploadCmd.Flags().StringVarP(&uploadKey, "key", "k", "", "Object key to store the file under (defaults to document.key)")

	// Mark flags as required
	uploadCmd.MarkFlagRequired("file")
}

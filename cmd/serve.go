/*
Copyright © 2025
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	httpHdlr "askdoc/handler/http"
	"askdoc/src/core/chunking"
	"askdoc/src/core/chunking/miniostore"
	"askdoc/src/log"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the document chat server",
	Long:  `The serve command starts an HTTP server that answers chat requests with chunk counts for the active document.`,
	RunE:  RunServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func RunServer(cmd *cobra.Command, args []string) error {
	bucket, err := requireBucket()
	if err != nil {
		return err
	}

	// Initialize MinIO service with config from viper
	minioService, err := newMinioService()
	if err != nil {
		return fmt.Errorf("failed to create minio service: %w", err)
	}

	// Initialize store, splitter and pipeline
	store := miniostore.NewStore(minioService, bucket)
	splitter := chunking.NewSplitter(
		viper.GetInt("chunking.size"),
		viper.GetInt("chunking.overlap"),
	)
	pipeline := chunking.NewService(store, store, splitter)

	// Initialize HTTP handler
	handler, err := httpHdlr.NewHandler(
		pipeline,
		minioService,
		bucket,
		viper.GetString("document.key"),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize handler: %w", err)
	}

	// Parse request timeout, the per-invocation deadline
	requestTimeout, err := time.ParseDuration(viper.GetString("server.request_timeout"))
	if err != nil {
		log.Error(err, "Invalid request timeout, using default 30s")
		requestTimeout = 30 * time.Second
	}

	// Setup gin router
	r := gin.Default()
	r.Use(requestDeadline(requestTimeout))

	// Register routes
	handler.RegisterRoutes(r)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + viper.GetString("server.port"),
		Handler: r,
	}

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	log.Info("Server listening", "addr", srv.Addr, "bucket", bucket, "document", viper.GetString("document.key"))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	log.Info("Shutting down server...")

	// Parse shutdown timeout
	timeout, err := time.ParseDuration(viper.GetString("server.shutdown_timeout"))
	if err != nil {
		log.Error(err, "Invalid shutdown timeout, using default 10s")
		timeout = 10 * time.Second
	}

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "Server forced to shutdown")
	}

	log.Info("Server exited")
	return nil
}

// requestDeadline bounds every request with the configured invocation
// deadline; storage operations abort when it expires, with no
// partial-result cleanup.
func requestDeadline(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

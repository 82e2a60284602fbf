package main

import (
	"context"
	"fmt"
	"os"
	"path"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/alder-ui/alder/examples/counter"
	"github.com/alder-ui/alder/pkg/export"
)

func exportCmd() *cobra.Command {
	var (
		out      string
		title    string
		s3Bucket string
		s3Prefix string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the example counter as static HTML",
		Long: `Render the example counter's initial view to a static page.

The page is written to a local file, and optionally published to an
S3 bucket using the ambient AWS credentials.

Examples:
  alder export --out=index.html
  alder export --s3-bucket=my-pages --s3-prefix=snapshots`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), out, title, s3Bucket, s3Prefix)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "index.html", "Output file")
	cmd.Flags().StringVarP(&title, "title", "t", "Alder Counter", "Page title")
	cmd.Flags().StringVar(&s3Bucket, "s3-bucket", "", "Publish to this S3 bucket")
	cmd.Flags().StringVar(&s3Prefix, "s3-prefix", "", "Key prefix inside the bucket")

	return cmd
}

func runExport(ctx context.Context, out, title, s3Bucket, s3Prefix string) error {
	page := export.Page(title, export.Markup(counter.View(0)))

	if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(page))

	if s3Bucket == "" {
		return nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	pub := export.NewS3Publisher(s3.NewFromConfig(cfg), s3Bucket, s3Prefix, nil)
	if err := pub.Publish(ctx, out, page); err != nil {
		return err
	}
	fmt.Printf("published to s3://%s\n", path.Join(s3Bucket, s3Prefix, out))
	return nil
}

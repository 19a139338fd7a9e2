package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"restoration-financials/internal/domain"
)

const (
	JobsFile      = "financial_jobs.json"
	CustomersFile = "financial_customers.json"
)

// Write stores the dataset as two indented JSON arrays under dir. Each file is
// replaced via rename, so readers never see a partial file, but the pair is
// not updated atomically.
func Write(dir string, ds domain.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	jobs := ds.Jobs
	if jobs == nil {
		jobs = []domain.Job{}
	}
	customers := ds.Customers
	if customers == nil {
		customers = []domain.Customer{}
	}
	if err := writeJSON(filepath.Join(dir, JobsFile), jobs); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, CustomersFile), customers); err != nil {
		return err
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Load reads both fixture files from dir concurrently.
func Load(ctx context.Context, dir string) (domain.Dataset, error) {
	var ds domain.Dataset
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readJSON(ctx, filepath.Join(dir, JobsFile), &ds.Jobs)
	})
	g.Go(func() error {
		return readJSON(ctx, filepath.Join(dir, CustomersFile), &ds.Customers)
	})
	if err := g.Wait(); err != nil {
		return domain.Dataset{}, err
	}
	return ds, nil
}

func readJSON(ctx context.Context, path string, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	catalogsvcs "github.com/ghuser/orderdesk/services/catalog/application/services"
)

// catalogFile is the YAML layout accepted by "catalog import":
//
//	products:
//	  - name: Widget
//	    price: "9.99"
type catalogFile struct {
	Products []catalogEntry `yaml:"products"`
}

type catalogEntry struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

type seedProduct struct {
	Name  string
	Price decimal.Decimal
}

func parseCatalog(data []byte) ([]seedProduct, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	out := make([]seedProduct, 0, len(f.Products))
	for i, e := range f.Products {
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, fmt.Errorf("product %d (%q): invalid price %q: %w", i+1, e.Name, e.Price, err)
		}
		out = append(out, seedProduct{Name: strings.TrimSpace(e.Name), Price: price})
	}
	return out, nil
}

// importCatalog creates every product whose name is not already in the
// catalog and returns how many were created.
func importCatalog(ctx context.Context, svc *catalogsvcs.ProductService, products []seedProduct) (int, error) {
	existing, err := svc.List(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Name.String()] = true
	}

	created := 0
	for _, p := range products {
		if seen[p.Name] {
			continue
		}
		if _, err := svc.Create(ctx, p.Name, p.Price); err != nil {
			return created, fmt.Errorf("import %q: %w", p.Name, err)
		}
		seen[p.Name] = true
		created++
	}
	return created, nil
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the product catalog",
	}

	var file string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import products from a YAML file, skipping names that already exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			products, err := parseCatalog(data)
			if err != nil {
				return err
			}

			a, closeDB, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			n, err := importCatalog(cmd.Context(), catalogsvcs.New(a).Product, products)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d products\n", n, len(products))
			return nil
		},
	}
	importCmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with a products list")
	_ = importCmd.MarkFlagRequired("file")

	cmd.AddCommand(importCmd)
	return cmd
}

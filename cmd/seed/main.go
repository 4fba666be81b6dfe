// seed carga exportaciones CSV en el store configurado (STORE_DRIVER).
//
// Uso:
//
//	go run ./cmd/seed inventory articulos.csv
//	go run ./cmd/seed customers clientes.csv --encoding latin1
//	go run ./cmd/seed sales ventas.csv
//
// inventory pasa por el libro de stock (valida y agrega); customers y sales reemplazan la colección.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	appinventory "github.com/jhoicas/Inventario-entregas/internal/application/inventory"
	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/collections"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/csvimport"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/notify"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/store"
	"github.com/jhoicas/Inventario-entregas/pkg/config"
	"github.com/jhoicas/Inventario-entregas/pkg/logger"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var encoding string
	root := &cobra.Command{
		Use:          "seed",
		Short:        "Carga CSV de inventario, clientes o ventas en el store",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&encoding, "encoding", csvimport.EncodingUTF8, "encoding del archivo: utf8 o latin1")

	root.AddCommand(
		&cobra.Command{
			Use:   "inventory <archivo.csv>",
			Short: "Agrega artículos al libro de stock",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd.Context(), args[0], encoding, seedInventory)
			},
		},
		&cobra.Command{
			Use:   "customers <archivo.csv>",
			Short: "Reemplaza el directorio de clientes",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd.Context(), args[0], encoding, seedCustomers)
			},
		},
		&cobra.Command{
			Use:   "sales <archivo.csv>",
			Short: "Reemplaza el feed de ventas",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd.Context(), args[0], encoding, seedSales)
			},
		},
	)
	return root
}

type seedFunc func(ctx context.Context, s repository.CollectionStore, r io.Reader, log *logger.Logger) error

func withStore(ctx context.Context, path, encoding string, fn seedFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()
	r, err := csvimport.Reader(f, encoding)
	if err != nil {
		return err
	}

	s, closeStore, err := store.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(ctx, s, r, log)
}

func seedInventory(ctx context.Context, s repository.CollectionStore, r io.Reader, log *logger.Logger) error {
	rows, err := csvimport.ReadInventory(r)
	if err != nil {
		return err
	}
	ledger, err := appinventory.LoadLedger(ctx, s, notify.NewLogSink(log))
	if err != nil {
		return err
	}
	created := 0
	for i, in := range rows {
		if _, err := ledger.CreateItem(ctx, in); err != nil {
			log.Warn().Err(err).Int("fila", i+1).Str("name", in.Name).Msg("artículo omitido")
			continue
		}
		created++
	}
	log.Info().Int("creados", created).Int("filas", len(rows)).Msg("inventario cargado")
	return nil
}

func seedCustomers(ctx context.Context, s repository.CollectionStore, r io.Reader, log *logger.Logger) error {
	customers, err := csvimport.ReadCustomers(r)
	if err != nil {
		return err
	}
	if err := collections.NewCustomerDirectory(s).Save(ctx, customers); err != nil {
		return err
	}
	log.Info().Int("clientes", len(customers)).Msg("clientes cargados")
	return nil
}

func seedSales(ctx context.Context, s repository.CollectionStore, r io.Reader, log *logger.Logger) error {
	sales, err := csvimport.ReadSales(r)
	if err != nil {
		return err
	}
	if err := s.Save(ctx, repository.KeySales, sales); err != nil {
		return fmt.Errorf("guardar ventas: %w", err)
	}
	log.Info().Int("ventas", len(sales)).Msg("ventas cargadas")
	return nil
}

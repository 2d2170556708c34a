package cli

import (
	"context"
	"fmt"
	"io"

	"pet-adoption/internal/adapters/remote"
	"pet-adoption/internal/app"
	"pet-adoption/internal/domain/navigation"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"

	"github.com/spf13/cobra"
)

func NewPetsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Browse the pets up for adoption",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSource(cmd, rootOpts, func(src *petSource) error {
				return newPrinter(rootOpts, cmd.OutOrStdout()).list(navigation.RenderList(src.store.Current()))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show the detail of one pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := pets.ParseID(args[0])
			if err != nil {
				return err
			}
			return withSource(cmd, rootOpts, func(src *petSource) error {
				return newPrinter(rootOpts, cmd.OutOrStdout()).detail(navigation.RenderDetail(src.store, id))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "random",
		Short: "Show a random pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSource(cmd, rootOpts, func(src *petSource) error {
				p, err := src.random(cmd.Context())
				if err != nil {
					return err
				}
				return newPrinter(rootOpts, cmd.OutOrStdout()).detail(navigation.RenderDetail(src.store, p.ID))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reload",
		Short: "Ask a running server to reload its pet list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSource(cmd, rootOpts, func(src *petSource) error {
				if src.client == nil {
					return fmt.Errorf("reload needs --server or client.base_url")
				}
				n, err := src.client.Reload(cmd.Context())
				if err != nil {
					return err
				}
				return newPrinter(rootOpts, cmd.OutOrStdout()).reloaded(n)
			})
		},
	})

	return cmd
}

// petSource es el store del que leen los comandos: local (repo configurado)
// o cargado desde un server remoto.
type petSource struct {
	store  *pets.Store
	client *remote.PetsClient
}

func (s *petSource) random(ctx context.Context) (pets.Pet, error) {
	if s.client != nil {
		return s.client.Random(ctx)
	}
	p, ok := s.store.GetRandomPet()
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func withSource(cmd *cobra.Command, opts *RootOptions, fn func(*petSource) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	src, cleanup, err := openSource(cmd.Context(), cfg, opts.Server, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(src)
}

func openSource(ctx context.Context, cfg config.Config, server string, logOut io.Writer) (*petSource, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
		Output: logOut,
	})

	if server == "" {
		server = cfg.Client.BaseURL
	}

	if server != "" {
		client, err := remote.NewPetsClient(server, cfg.Client.Timeout)
		if err != nil {
			return nil, func() {}, err
		}
		store, err := pets.NewStore(ctx, client, pets.WithLogger(log))
		if err != nil {
			return nil, func() {}, err
		}
		return &petSource{store: store, client: client}, func() {}, nil
	}

	store, cleanup, err := app.BuildStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, func() {}, err
	}
	return &petSource{store: store}, cleanup, nil
}

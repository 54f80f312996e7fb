// Package assetctl implements the assetctl command tree: offline inspection
// of bundle directories using the same loading pipeline as the daemon.
package assetctl

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"assetd/internal/assets"
	"assetd/internal/bundle"
	"assetd/internal/frontend"
	"assetd/internal/registry"
	"assetd/pkg/types"
)

// Main parses args and runs the command tree. Returns a process exit code.
func Main(args []string) int {
	root := buildRootCmd(os.Stdout)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// buildRootCmd constructs the Cobra command tree writing output to out.
func buildRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "assetctl",
		Short:         "Inspect and validate asset bundle directories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	validate := &cobra.Command{
		Use:     "validate <bundle-dir>",
		Short:   "Load one bundle directory and report validity",
		Example: "  assetctl validate ./bundles/base",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := bundle.NewFolder(args[0])
			b.Init(frontend.New())
			b.Reload()
			if !b.Valid() {
				return fmt.Errorf("bundle %s is invalid", b.ID())
			}
			fmt.Fprintf(out, "bundle %s: ok\n", b.ID())
			return nil
		},
	}

	list := &cobra.Command{
		Use:     "list <bundles-root>",
		Short:   "List bundle directories under a root",
		Example: "  assetctl list ./bundles",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := registry.LoadDir(args[0])
			if err != nil {
				return err
			}
			for _, info := range infos {
				fmt.Fprintf(out, "%s\t%s\t%s\n", info.ID, info.Name, info.Path)
			}
			return nil
		},
	}

	catalog := &cobra.Command{
		Use:     "catalog <bundles-root>",
		Short:   "Print the aggregated catalogs across all bundles",
		Example: "  assetctl catalog ./bundles",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager(args[0])
			if err != nil {
				return err
			}
			defer m.Close()
			printNames := func(kind string, names []string) {
				fmt.Fprintf(out, "%s:\n", kind)
				for _, n := range names {
					fmt.Fprintf(out, "  %s\n", n)
				}
			}
			printNames("skins", m.ListPuyoSkins())
			printNames("backgrounds", m.ListBackgrounds())
			printNames("charskins", m.ListCharacterSkins())
			printNames("sfx", m.ListSfx())
			return nil
		},
	}

	var (
		kind      string
		token     string
		custom    string
		character string
		script    string
	)
	resolve := &cobra.Command{
		Use:     "resolve <bundles-root>",
		Short:   "Resolve one token through the bundle chain",
		Example: "  assetctl resolve ./bundles --kind image --token background --custom classic",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager(args[0])
			if err != nil {
				return err
			}
			defer m.Close()
			resp, err := assets.Guard(m).Resolve(types.ResolveRequest{
				Kind:      kind,
				Token:     token,
				Custom:    custom,
				Character: character,
				Script:    script,
			})
			if err != nil {
				return err
			}
			if !resp.Found {
				return fmt.Errorf("no bundle satisfies %s %s", kind, token)
			}
			fmt.Fprintln(out, resp.Path)
			return nil
		},
	}
	resolve.Flags().StringVar(&kind, "kind", "image", "Asset kind: image|char_image|sound|char_sound|animation|char_animation")
	resolve.Flags().StringVar(&token, "token", "", "Token name")
	resolve.Flags().StringVar(&custom, "custom", "", "Custom (skin/variant) name")
	resolve.Flags().StringVar(&character, "character", "", "Character name")
	resolve.Flags().StringVar(&script, "script", "", "Animation script name")

	root.AddCommand(validate, list, catalog, resolve)
	return root
}

// loadManager discovers bundles under root and loads them the way the daemon
// does, with logging reduced to warnings.
func loadManager(root string) (*assets.Manager, error) {
	infos, err := registry.LoadDir(root)
	if err != nil {
		return nil, err
	}
	log := zerolog.New(os.Stderr).Level(zerolog.WarnLevel)
	fe := frontend.New()
	m := assets.New(fe, &log)
	for _, info := range infos {
		if !m.LoadBundle(bundle.NewFolder(info.Path), 0) {
			log.Warn().Str("bundle", info.ID).Msg("bundle rejected")
		}
	}
	return m, nil
}

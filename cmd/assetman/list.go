// Bundle and listing commands for the assetman CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openpuyo/assetman/internal/folder"
	"github.com/openpuyo/assetman/internal/pak"
	"github.com/openpuyo/assetman/pkg/types"
)

// bundleInfo is the JSON shape of one registry entry.
type bundleInfo struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Source string `json:"source"`
	ID     string `json:"id"`
}

var bundlesCmd = &cobra.Command{
	Use:   "bundles",
	Short: "List the loaded bundles in resolution order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildManager()
		if err != nil {
			return err
		}
		defer m.Close()

		var infos []bundleInfo
		for _, b := range m.Bundles() {
			infos = append(infos, describeBundle(b))
		}

		if flagJSON {
			return printJSON(infos)
		}
		for i, info := range infos {
			fmt.Printf("%d\t%s\t%s\t%s\n", i, info.Name, info.Kind, info.Source)
		}
		return nil
	},
}

// describeBundle reports the registry entry for either built-in bundle
// kind.
func describeBundle(b types.Bundle) bundleInfo {
	switch v := b.(type) {
	case *folder.Bundle:
		return bundleInfo{Name: v.Name(), Kind: types.KindFolder, Source: v.Root(), ID: v.ID()}
	case *pak.Bundle:
		return bundleInfo{Name: v.Name(), Kind: types.KindPak, Source: v.Path(), ID: v.ID()}
	default:
		return bundleInfo{Name: fmt.Sprintf("%T", b)}
	}
}

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List the union of puyo skins across all bundles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(func(m listingSource) []string { return m.ListPuyoSkins() })
	},
}

var backgroundsCmd = &cobra.Command{
	Use:   "backgrounds",
	Short: "List the union of backgrounds across all bundles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(func(m listingSource) []string { return m.ListBackgrounds() })
	},
}

var charskinsCmd = &cobra.Command{
	Use:   "charskins",
	Short: "List the union of character skins across all bundles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(func(m listingSource) []string { return m.ListCharacterSkins() })
	},
}

var sfxCmd = &cobra.Command{
	Use:   "sfx",
	Short: "List the union of sound effect sets across all bundles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListing(func(m listingSource) []string { return m.ListSfx() })
	},
}

// listingSource is the enumeration surface of the manager.
type listingSource interface {
	ListPuyoSkins() []string
	ListBackgrounds() []string
	ListCharacterSkins() []string
	ListSfx() []string
}

// runListing builds a manager, applies one enumeration, and prints it.
func runListing(list func(listingSource) []string) error {
	m, err := buildManager()
	if err != nil {
		return err
	}
	defer m.Close()
	return printNames(list(m))
}

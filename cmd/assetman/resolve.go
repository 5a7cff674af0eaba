// Asset resolution commands for the assetman CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openpuyo/assetman/pkg/types"
)

// Resolution flag values.
var (
	flagCustom    string
	flagCharacter string
)

// errNotFound signals a soft resolution failure to the CLI boundary.
var errNotFound = errors.New("asset not found in any bundle")

// resolved is the JSON shape of a successful resolution.
type resolved struct {
	Token     string `json:"token"`
	Qualifier string `json:"qualifier,omitempty"`
	Path      string `json:"path"`
	Size      int    `json:"size"`
}

func init() {
	imageCmd.Flags().StringVar(&flagCustom, "custom", "", "custom name override")
	imageCmd.Flags().StringVar(&flagCharacter, "character", "", "resolve the per-character variant")
	soundCmd.Flags().StringVar(&flagCustom, "custom", "", "custom name override")
	soundCmd.Flags().StringVar(&flagCharacter, "character", "", "resolve the per-character variant")
}

var imageCmd = &cobra.Command{
	Use:   "image <token>",
	Short: "Resolve an image token against the loaded bundles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := types.ParseImageToken(args[0])
		if err != nil {
			return err
		}

		m, err := buildManager()
		if err != nil {
			return err
		}
		defer m.Close()

		var img types.Image
		qualifier := flagCustom
		if flagCharacter != "" {
			character, err := types.ParsePuyoCharacter(flagCharacter)
			if err != nil {
				return err
			}
			qualifier = flagCharacter
			img = m.LoadCharImage(token, character)
		} else {
			img = m.LoadImage(token, flagCustom)
		}

		data, ok := img.(*types.ImageData)
		if !ok || data.Error() {
			return fmt.Errorf("%w: image %s", errNotFound, token)
		}
		return printResolved(resolved{
			Token:     token.String(),
			Qualifier: qualifier,
			Path:      data.Path,
			Size:      len(data.Bytes),
		})
	},
}

var soundCmd = &cobra.Command{
	Use:   "sound <token>",
	Short: "Resolve a sound token against the loaded bundles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := types.ParseSoundEffectToken(args[0])
		if err != nil {
			return err
		}

		m, err := buildManager()
		if err != nil {
			return err
		}
		defer m.Close()

		var snd types.Sound
		qualifier := flagCustom
		if flagCharacter != "" {
			character, err := types.ParsePuyoCharacter(flagCharacter)
			if err != nil {
				return err
			}
			qualifier = flagCharacter
			snd = m.LoadCharSound(token, character)
		} else {
			snd = m.LoadSound(token, flagCustom)
		}

		data, ok := snd.(*types.SoundData)
		if !ok || data.Error() {
			return fmt.Errorf("%w: sound %s", errNotFound, token)
		}
		return printResolved(resolved{
			Token:     token.String(),
			Qualifier: qualifier,
			Path:      data.Path,
			Size:      len(data.Bytes),
		})
	},
}

var animCmd = &cobra.Command{
	Use:   "anim <class> <name>",
	Short: "Resolve an animation folder against the loaded bundles",
	Long: `Resolve an animation folder. The class is an animation token name
(character, background, fever, intro); for the character class the name
is a character name and resolution uses the per-character folder path.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := types.ParseAnimationToken(args[0])
		if err != nil {
			return err
		}

		m, err := buildManager()
		if err != nil {
			return err
		}
		defer m.Close()

		var dir string
		if token == types.AnimationCharacter {
			character, err := types.ParsePuyoCharacter(args[1])
			if err != nil {
				return err
			}
			dir = m.CharAnimationsFolder(character)
		} else {
			dir = m.AnimationFolder(token, args[1])
		}

		if dir == "" {
			return fmt.Errorf("%w: animation %s/%s", errNotFound, token, args[1])
		}
		if flagJSON {
			return printJSON(map[string]string{"token": token.String(), "name": args[1], "folder": dir})
		}
		fmt.Println(dir)
		return nil
	},
}

// printResolved writes one resolution result per the --json flag.
func printResolved(r resolved) error {
	if flagJSON {
		return printJSON(r)
	}
	fmt.Printf("%s\t%d bytes\n", r.Path, r.Size)
	return nil
}

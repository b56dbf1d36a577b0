package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/npillmayer/pencils/pencil"
	"github.com/npillmayer/pencils/selection"
)

// msgOverSelection is logged if candidates beyond the third are ignored.
const msgOverSelection = "more than three marks or circles selected"

// msgImaginary is printed for results without a real locus.
const msgImaginary = "computed circle is imaginary"

func (c *CLI) constructCmd(use string, mode pencil.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <scene.toml>",
		Short: mode.String(),
		Long:  mode.Help() + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.construct(cmd.OutOrStdout(), mode, args[0])
		},
	}
}

func (c *CLI) construct(out io.Writer, mode pencil.Mode, path string) error {
	sc, err := loadScene(path)
	if err != nil {
		return err
	}
	primary, secondary, err := sc.primitives()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	req, err := selection.Resolve(primary, secondary)
	if err != nil {
		return err
	}
	c.Logger.Debug("resolved selection", "reference", req.Reference, "candidates", len(req.Candidates))
	res, err := pencil.Compute(mode, req)
	if res.Ignored > 0 {
		c.Logger.Warn(msgOverSelection, "ignored", res.Ignored)
	}
	if err != nil {
		return err
	}
	return report(out, res)
}

// report prints the computed circle with 7 significant digits. Circles
// without a positive squared radius cannot be drawn; a message is printed
// instead of a radius.
func report(out io.Writer, res pencil.Result) error {
	x, y := res.Circle.Center().F()
	sqr := res.Circle.SquaredRadius()
	if !res.Drawable() {
		_, err := fmt.Fprintf(out, "center (%.7g,%.7g), r² = %.7g\n%s\n", x, y, sqr, msgImaginary)
		return err
	}
	r, _ := res.Circle.Radius()
	_, err := fmt.Fprintf(out, "center (%.7g,%.7g), radius %.7g, r² = %.7g\n", x, y, r, sqr)
	return err
}

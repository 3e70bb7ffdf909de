// Command segyinfo inspects SEG-Y files: survey geometry, textual
// headers, and trace dumps.
package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robert-malhotra/go-segy/field"
	"github.com/robert-malhotra/go-segy/segy"
)

var rootCmd = &cobra.Command{
	Use:   "segyinfo",
	Short: "Inspect SEG-Y seismic files",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Print survey geometry for one or more files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries := make([]string, len(args))
		var g errgroup.Group
		for i, path := range args {
			g.Go(func() error {
				s, err := summarize(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				summaries[i] = s
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		fmt.Print(strings.Join(summaries, "\n"))
		return nil
	},
}

func summarize(path string) (string, error) {
	f, err := segy.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", path)
	if f.Unstructured() {
		fmt.Fprintf(&b, "  unstructured\n")
	} else {
		il, xl, off := f.Ilines(), f.Xlines(), f.Offsets()
		fmt.Fprintf(&b, "  sorting:    %s\n", f.Sorting())
		fmt.Fprintf(&b, "  inlines:    %d [%d, %d]\n", len(il), il[0], il[len(il)-1])
		fmt.Fprintf(&b, "  crosslines: %d [%d, %d]\n", len(xl), xl[0], xl[len(xl)-1])
		if len(off) > 1 {
			fmt.Fprintf(&b, "  offsets:    %d [%d, %d]\n", len(off), off[0], off[len(off)-1])
		}
	}
	fmt.Fprintf(&b, "  traces:     %d\n", f.Tracecount())
	fmt.Fprintf(&b, "  samples:    %d\n", f.Samplecount())
	fmt.Fprintf(&b, "  format:     %s\n", f.Format())
	return b.String(), nil
}

var textCmd = &cobra.Command{
	Use:   "text [file]",
	Short: "Print a textual header, wrapped at 80 columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, _ := cmd.Flags().GetInt("slot")
		f, err := segy.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		text, err := f.Text().Get(slot)
		if err != nil {
			return err
		}
		for len(text) > 80 {
			fmt.Println(text[:80])
			text = text[80:]
		}
		fmt.Println(text)
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print the samples and key header words of one trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, _ := cmd.Flags().GetInt("trace")
		f, err := segy.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		rec, err := f.Header().Get(index)
		if err != nil {
			return err
		}
		for _, tag := range []field.Tag{field.Inline, field.Crossline, field.Offset, field.CDP} {
			v, err := rec.Get(tag)
			if err != nil {
				return err
			}
			fmt.Printf("byte %3d: %d\n", int(tag), v)
		}

		samples, err := f.Trace().Get(index)
		if err != nil {
			return err
		}
		for i, s := range samples {
			fmt.Printf("%6d %g\n", i, s)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	textCmd.Flags().Int("slot", 0, "textual header slot (0 is the mandatory header)")
	dumpCmd.Flags().Int("trace", 0, "trace index to dump")
	rootCmd.AddCommand(infoCmd, textCmd, dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

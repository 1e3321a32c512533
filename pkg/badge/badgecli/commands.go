package badgecli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/neuroplastio/neio-badge/internal/configsvc"
	"github.com/neuroplastio/neio-badge/internal/protocol"
	"github.com/neuroplastio/neio-badge/internal/render"
	"github.com/neuroplastio/neio-badge/internal/transport"
	"github.com/neuroplastio/neio-badge/internal/transport/linux"
	"github.com/neuroplastio/neio-badge/pkg/badge"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// encode writes v as JSON or YAML. It returns false for the text format.
func encode(w io.Writer, format string, v any) (bool, error) {
	var (
		b   []byte
		err error
	)
	switch format {
	case formatText:
		return false, nil
	case formatJSON:
		b, err = json.MarshalIndent(v, "", "  ")
		b = append(b, '\n')
	case formatYAML:
		b, err = yaml.Marshal(v)
	default:
		return false, fmt.Errorf("unknown format %q, use %s, %s or %s", format, formatText, formatJSON, formatYAML)
	}
	if err != nil {
		return false, err
	}
	_, err = w.Write(b)
	return true, err
}

func printSketch(w io.Writer, title string, lines []string) {
	fmt.Fprintln(w, title)
	for _, l := range lines {
		fmt.Fprintf(w, "  %s\n", l)
	}
}

func NewPreview(s *settings, badge badgeProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "preview MESSAGE...",
		Short: "Show the rendered messages",
		Long:  `Render the messages and print them as text, without touching the badge.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := s.program(args)
			if err != nil {
				return err
			}
			b, err := badge()
			if err != nil {
				return err
			}
			bitmaps, err := b.Render(p)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, bm := range bitmaps {
				printSketch(out, fmt.Sprintf("Message %d (%d columns, %s):", i+1, bm.Columns, protocol.Mode(p.Modes[min(i, len(p.Modes)-1)])), render.Sketch(bm))
			}
			return nil
		},
	}
}

func NewListMethods(badge badgeProvider) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list-methods",
		Short: "List write methods",
		Long:  `List the write methods and whether their libraries could be loaded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := badge()
			if err != nil {
				return err
			}
			methods := b.Transport().Methods()
			ok, err := encode(cmd.OutOrStdout(), format, methods)
			if ok || err != nil {
				return err
			}
			printMethods(cmd.OutOrStdout(), methods)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json or yaml")
	return cmd
}

func NewListDevices(s *settings, badge badgeProvider) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list-devices",
		Short: "List attached badges",
		Long:  `List the badges the selected write method (-M) can see.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := badge()
			if err != nil {
				return err
			}
			addr := transport.Address{Method: s.config.Method, Device: transport.DeviceList}
			sel, err := b.Transport().Select(addr.Method, addr.Device)
			if err != nil {
				printHints(cmd.OutOrStdout(), b, addr, err)
				return err
			}
			if sel.Devices == nil {
				printSelection(cmd.OutOrStdout(), sel)
				return nil
			}
			ok, err := encode(cmd.OutOrStdout(), format, sel.Devices)
			if ok || err != nil {
				return err
			}
			printDevices(cmd.OutOrStdout(), sel.Devices)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json or yaml")
	return cmd
}

func NewWatch(s *settings, badge badgeProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "watch PROGRAM_FILE",
		Short: "Upload a program file whenever it changes",
		Long: `Upload a YAML program file and upload it again every time it is saved.

Example program file:

  type: 11x44
  brightness: 50
  messages:
    - text: "Hello :heart:"
      mode: scroll-up
    - text: logo.png
      mode: fixed
      blink: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := badge()
			if err != nil {
				return err
			}
			s.file = args[0]
			return watch(cmd.Context(), s, b, cmd.OutOrStdout())
		},
	}
}

func watch(ctx context.Context, s *settings, b *badge.Badge, out io.Writer) error {
	log := b.Log().Named("watch")
	svc := configsvc.New(log.Named("config"))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return svc.Start(ctx)
	})
	select {
	case <-svc.Ready():
	case <-ctx.Done():
		return group.Wait()
	}

	changes := make(chan struct{}, 1)
	_, err := configsvc.Register(svc, s.file, badge.ProgramFile{}, func(_ badge.ProgramFile, err error) {
		if err != nil {
			log.Error("Failed to read program", zap.Error(err))
			return
		}
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err != nil {
		cancel()
		_ = group.Wait()
		return err
	}

	var revision atomic.Int64
	upload := func() {
		rev := revision.Inc()
		p, addr, err := s.program(nil)
		if err != nil {
			log.Error("Invalid program", zap.Int64("revision", rev), zap.Error(err))
			return
		}
		sel, err := b.Upload(ctx, p, addr)
		if err != nil {
			log.Error("Upload failed", zap.Int64("revision", rev), zap.Error(err))
			printHints(out, b, addr, err)
			return
		}
		printSelection(out, sel)
		log.Info("Program uploaded", zap.Int64("revision", rev), zap.Int("messages", len(p.Messages)))
	}

	group.Go(func() error {
		upload()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changes:
				upload()
			}
		}
	})
	return group.Wait()
}

func NewEmulate(s *settings, badge badgeProvider) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "emulate",
		Short: "Run a virtual badge",
		Long: `Create a virtual badge through /dev/uhid and print every upload it receives.
Needs write access to /dev/uhid. Linux only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := badge()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			emulator := linux.NewEmulator(b.Log().Named("emulator"),
				linux.WithName(name),
				linux.WithDisplay(protocol.ParseDisplayType(s.config.Type)),
			)
			err = emulator.Run(cmd.Context(), func(u linux.Upload) {
				fmt.Fprintf(out, "Upload at brightness %d%%, sent %s\n", u.Info.Brightness, u.Info.Timestamp.Format("2006-01-02 15:04:05"))
				for i := range u.Info.Lengths {
					title := fmt.Sprintf("Message %d (speed %d, %s, blink %d, ants %d):",
						i+1, u.Info.Speeds[i], protocol.Mode(u.Info.Modes[i]), u.Info.Blinks[i], u.Info.Ants[i])
					printSketch(out, title, render.SketchData(u.Message(i)))
				}
			})
			stats := emulator.Stats()
			b.Log().Debug("Emulator stopped",
				zap.Int64("reports", stats.Reports.Load()),
				zap.Int64("uploads", stats.Uploads.Load()),
				zap.Int64("errors", stats.Errors.Load()),
			)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "LED Badge Emulator", "name of the virtual device")
	return cmd
}

func NewDoctor(badge badgeProvider) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check access to attached badges",
		Long:  `List the device nodes of attached badges and whether this user may write to them. Linux only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := badge()
			if err != nil {
				return err
			}
			nodes, err := linux.Diagnose(b.Log().Named("udev"))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ok, err := encode(out, format, nodes)
			if ok || err != nil {
				return err
			}
			if len(nodes) == 0 {
				fmt.Fprintf(out, "No badge with vendorID 0x%04x and productID 0x%04x found.\n", transport.VendorID, transport.ProductID)
				return nil
			}
			denied := false
			for _, n := range nodes {
				access := "writable"
				if !n.Writable {
					access = "no write access"
					denied = true
				}
				fmt.Fprintf(out, "%-8s %-20s %s\n", n.Subsystem, n.Path, access)
			}
			if denied {
				fmt.Fprintf(out, "\nAdd this to %s to allow access for all users:\n\n%s\n", linux.UdevRulePath, strings.TrimSpace(linux.UdevRule))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json or yaml")
	return cmd
}

func NewInitConfig(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write the default config file",
		Long:  `Create the config file with the current settings unless it already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, created, err := configsvc.RegisterWriteable(s.configPath, s.config)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", s.configPath)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", s.configPath)
			}
			return nil
		},
	}
}

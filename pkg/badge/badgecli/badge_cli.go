package badgecli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroplastio/neio-badge/internal/configsvc"
	"github.com/neuroplastio/neio-badge/internal/glyph"
	"github.com/neuroplastio/neio-badge/internal/protocol"
	"github.com/neuroplastio/neio-badge/internal/transport"
	"github.com/neuroplastio/neio-badge/pkg/badge"
)

func Main(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	dir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	cmd := NewRootCmd(filepath.Join(dir, "neio-badge"), filepath.Base(os.Args[0]))
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.ExecuteContext(ctx)
}

type badgeProvider func() (*badge.Badge, error)

// settings are the values of the flags shared by all commands.
type settings struct {
	configPath string
	config     badge.Config
	hid        string
	speed      string
	mode       string
	blink      string
	ants       string
	preload    []string
	file       string
}

// NewRootCmd builds the command line. programName decides the default
// display type: a name containing "12" selects the 12x48 badge.
func NewRootCmd(configDir, programName string) *cobra.Command {
	s := &settings{
		configPath: filepath.Join(configDir, "badge.yml"),
		config:     badge.DefaultConfig(),
		hid:        "0",
		speed:      "4",
		mode:       "0",
		blink:      "0",
		ants:       "0",
	}
	var listNames, modeHelp bool

	rootCmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] MESSAGE...", programName),
		Short: "Upload messages or graphics to an LED name badge",
		Long: `Upload messages or graphics to a 11x44 LED name badge via USB HID.

Up to 8 message texts with embedded builtin icons or loaded images within
colons (:) are accepted. See -l for a list of builtins.`,
		Example:       fmt.Sprintf(`  Combining image and text:
    %[1]s "I:HEART2:you"
  Two messages, the first one blinking:
    %[1]s -b 1,0 -m scroll-up,fixed "Hello" ":logo.png:"`, programName),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var b *badge.Badge
	provider := func() (*badge.Badge, error) {
		if b != nil {
			return b, nil
		}
		var err error
		b, err = badge.New(s.config)
		return b, err
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&s.config.Type, "type", "t", s.config.Type, "type of display: 12x48 or 11x44; rename the program to led-badge-12x48 to switch the default")
	flags.StringVarP(&s.config.Method, "method", "M", s.config.Method, "force using the given write method: auto, list or one of the names list prints")
	flags.StringVarP(&s.config.DeviceID, "device-id", "D", s.config.DeviceID, "force using the given device id if ambiguous: auto, list or one of the ids list prints")
	flags.StringVarP(&s.speed, "speed", "s", s.speed, "scroll speed (range 1..8), up to 8 comma separated values")
	flags.StringVarP(&s.mode, "mode", "m", s.mode, "up to 8 mode values: scroll-left(0) -right(1) -up(2) -down(3); fixed(4); animation(5); drop-down(6); curtain(7); laser(8); see --mode-help")
	flags.StringVarP(&s.blink, "blink", "b", s.blink, "1: blinking, 0: normal; up to 8 comma separated values")
	flags.StringVarP(&s.ants, "ants", "a", s.ants, "1: animated border, 0: normal; up to 8 comma separated values")
	flags.IntVarP(&s.config.Brightness, "brightness", "B", s.config.Brightness, "brightness of the display in percent: 25, 50, 75 or 100")
	flags.StringArrayVarP(&s.preload, "preload", "p", nil, "load an image addressed by ^A, ^B, ... in messages")
	flags.StringVarP(&s.hid, "hid", "H", s.hid, "set to 1 to connect via hidapi only")
	flags.StringVarP(&s.file, "file", "f", "", "read the messages from a YAML program file")
	flags.StringVar(&s.configPath, "config", s.configPath, "config file")
	flags.BoolVarP(&s.config.Verbose, "verbose", "v", false, "enable debug logging")
	_ = flags.MarkHidden("preload")
	_ = flags.MarkHidden("hid")
	_ = flags.MarkDeprecated("hid", "please use -M")

	rootCmd.Flags().BoolVarP(&listNames, "list-names", "l", false, "list named icons to be embedded in messages and exit, with -v also their control characters")
	rootCmd.Flags().BoolVar(&modeHelp, "mode-help", false, "explain the animation modes and exit")
	_ = rootCmd.Flags().MarkHidden("mode-help")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return s.load(cmd, programName)
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if b == nil {
			return nil
		}
		return b.Close()
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch {
		case listNames && s.config.Verbose:
			printIconCodes(out)
			return nil
		case listNames:
			fmt.Fprintln(out, iconNames())
			return nil
		case modeHelp:
			fmt.Fprintf(out, protocol.ModeHelp, programName)
			return nil
		}
		return s.upload(cmd, provider, args)
	}

	rootCmd.AddCommand(NewPreview(s, provider))
	rootCmd.AddCommand(NewListMethods(provider))
	rootCmd.AddCommand(NewListDevices(s, provider))
	rootCmd.AddCommand(NewWatch(s, provider))
	rootCmd.AddCommand(NewEmulate(s, provider))
	rootCmd.AddCommand(NewDoctor(provider))
	rootCmd.AddCommand(NewInitConfig(s))
	return rootCmd
}

func iconNames() string {
	return ":" + strings.Join(glyph.Default.Names(), ":  :") + ":  ::  or e.g. :path/to/some_icon.png:"
}

// printIconCodes lists every icon with the control character that embeds
// it in a message.
func printIconCodes(w io.Writer) {
	for _, name := range glyph.Default.Names() {
		code, _ := glyph.Default.Code(name)
		fmt.Fprintf(w, "  %-12s ^%c (0x%02x)\n", ":"+name+":", '@'+code, code)
	}
	fmt.Fprintln(w, "  ::           a literal colon")
}

// load reads the config file and lays the changed flags over it.
func (s *settings) load(cmd *cobra.Command, programName string) error {
	cfg, err := configsvc.Load(s.configPath, badge.DefaultConfig())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = badge.DefaultConfig()
	case err != nil:
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.Type = s.config.Type
	}
	if flags.Changed("method") {
		cfg.Method = s.config.Method
	}
	if flags.Changed("device-id") {
		cfg.DeviceID = s.config.DeviceID
	}
	if flags.Changed("brightness") {
		cfg.Brightness = s.config.Brightness
	}
	cfg.Verbose = s.config.Verbose

	if strings.Contains(programName, "12") {
		cfg.Type = protocol.Display12x48.String()
	}
	cfg.Method, err = translateHID(cmd.ErrOrStderr(), s.hid, cfg.Method)
	if err != nil {
		return err
	}
	s.config = cfg
	return nil
}

// translateHID maps the deprecated -H 1 onto -M hidapi.
func translateHID(w io.Writer, hid, method string) (string, error) {
	if hid != "1" {
		return method, nil
	}
	fmt.Fprintln(w, "Option -H is deprecated, please use -M!")
	if method == "" || method == transport.MethodAuto {
		return transport.NameHIDAPI, nil
	}
	return "", fmt.Errorf("%w: parameter values are ambiguous, please use -M only", protocol.ErrInvalidInput)
}

// program builds the upload from the message arguments or the program
// file, and the address it goes to.
func (s *settings) program(args []string) (badge.Program, transport.Address, error) {
	p := badge.DefaultProgram()
	p.Type = protocol.ParseDisplayType(s.config.Type)
	p.Brightness = s.config.Brightness
	p.Preload = s.preload
	addr := s.config.Address()

	var err error
	lists := []struct {
		name  string
		value string
		dest  *[]int
		parse func(string) ([]int, error)
	}{
		{"speed", s.speed, &p.Speeds, SplitInts},
		{"mode", s.mode, &p.Modes, SplitModes},
		{"blink", s.blink, &p.Blinks, SplitInts},
		{"ants", s.ants, &p.Ants, SplitInts},
	}
	for _, l := range lists {
		*l.dest, err = l.parse(l.value)
		if err != nil {
			return p, addr, fmt.Errorf("invalid --%s: %w", l.name, err)
		}
	}

	if s.file == "" {
		if len(args) == 0 {
			return p, addr, fmt.Errorf("%w: at least one message is required", protocol.ErrInvalidInput)
		}
		if len(args) > protocol.MaxMessages {
			return p, addr, fmt.Errorf("%w: %d messages given, at most %d are supported", protocol.ErrInvalidInput, len(args), protocol.MaxMessages)
		}
		p.Messages = args
		return p, addr, nil
	}

	if len(args) > 0 {
		return p, addr, fmt.Errorf("%w: use either messages or --file", protocol.ErrInvalidInput)
	}
	f, err := configsvc.Load(s.file, badge.ProgramFile{})
	if err != nil {
		return p, addr, err
	}
	if f.Device != nil && addr == badge.DefaultConfig().Address() {
		addr = *f.Device
	}
	p, err = f.Program(p)
	return p, addr, err
}

func (s *settings) upload(cmd *cobra.Command, provider badgeProvider, args []string) error {
	out := cmd.OutOrStdout()
	p, addr, err := s.program(args)
	if err != nil {
		return err
	}
	b, err := provider()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Type: %s\n", p.Type)
	sel, err := b.Upload(cmd.Context(), p, addr)
	printSelection(out, sel)
	if err != nil {
		printHints(out, b, addr, err)
		return err
	}
	return nil
}

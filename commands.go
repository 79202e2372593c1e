package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/spacemeshos/binutil/config"
	"github.com/spacemeshos/binutil/fixedpoint"
	"github.com/spacemeshos/binutil/hash"
	"github.com/spacemeshos/binutil/hexutil"
	"github.com/spacemeshos/binutil/logging"
	"github.com/spacemeshos/binutil/shared"
	"github.com/spacemeshos/binutil/strip"
	"github.com/spacemeshos/binutil/symbols"
	"github.com/spacemeshos/binutil/types"
	"github.com/spacemeshos/binutil/util"
)

type symbolTable interface {
	symbols.Lookup
	Intern(name string) (symbols.Symbol, error)
}

// app is the state shared by all commands of one invocation.
type app struct {
	cfg     *config.Config
	out     io.Writer
	ctx     context.Context
	symbols symbolTable
}

func (a *app) init() error {
	if a.cfg.LRUSymbols {
		table, err := symbols.NewLRUTable(a.cfg.SymbolTableSize)
		if err != nil {
			return err
		}
		a.symbols = table
		return nil
	}
	a.symbols = symbols.NewTable(a.cfg.SymbolTableSize)
	return nil
}

func (a *app) logger() *zap.Logger {
	return logging.FromContext(a.ctx)
}

func (a *app) println(b []byte) error {
	_, err := fmt.Fprintf(a.out, "%s\n", b)
	return err
}

func (a *app) register(p *flags.Parser) error {
	commands := []struct {
		name, short string
		data        any
	}{
		{"hex-encode", "Encode text as lowercase hex", &hexEncodeCommand{app: a}},
		{"hex-decode", "Decode hex into raw bytes", &hexDecodeCommand{app: a}},
		{"strip", "Strip a byte pattern from the ends of the input", &stripCommand{app: a}},
		{"abbreviate", "Shorten the input, marking the cut with an ellipsis", &abbreviateCommand{app: a}},
		{"tr", "Substitute bytes of the input", &trCommand{app: a}},
		{"fill", "Repeat one byte", &fillCommand{app: a}},
		{"join", "Join items with a separator", &joinCommand{app: a}},
		{"format", "Render arguments into a template", &formatCommand{app: a}},
		{"to-number", "Parse the input as an integer or a float", &toNumberCommand{app: a}},
		{"to-float", "Parse the input as a float", &toFloatCommand{app: a}},
		{"symbol", "Resolve the input against interned symbols", &symbolCommand{app: a}},
		{"fixed-encode", "Encode a number as hex fixed-point", &fixedEncodeCommand{app: a}},
		{"fixed-decode", "Decode hex fixed-point into a number", &fixedDecodeCommand{app: a}},
		{"random", "Generate distinct random byte strings", &randomCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := p.AddCommand(c.name, c.short, c.short, c.data); err != nil {
			return fmt.Errorf("registering command %s: %w", c.name, err)
		}
	}
	return nil
}

type hexEncodeCommand struct {
	Args struct {
		Input string `positional-arg-name:"input"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *hexEncodeCommand) Execute([]string) error {
	return c.app.println(hexutil.Encode([]byte(c.Args.Input)))
}

type hexDecodeCommand struct {
	Args struct {
		Hex string `positional-arg-name:"hex"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *hexDecodeCommand) Execute([]string) error {
	b, err := hexutil.DecodeString(c.Args.Hex)
	if err != nil {
		return err
	}
	return c.app.println(b)
}

//nolint:lll
type stripCommand struct {
	Direction strip.Direction `short:"d" long:"direction" default:"both"   description:"End(s) to strip: left, right or both"`
	Mode      strip.Mode      `short:"m" long:"mode"      default:"single" description:"How the target matches: single, order or random"`
	Target    string          `short:"t" long:"target"    default:" "      description:"Bytes to strip"`

	Args struct {
		Input string `positional-arg-name:"input"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *stripCommand) Execute([]string) error {
	out, err := strip.Strip([]byte(c.Args.Input), c.Direction, []byte(c.Target), c.Mode)
	if err != nil {
		return err
	}
	c.app.logger().Debug("stripped",
		zap.Stringer("direction", c.Direction),
		zap.Stringer("mode", c.Mode),
		zap.Int("removed", len(c.Args.Input)-len(out)),
	)
	return c.app.println(out)
}

type abbreviateCommand struct {
	Max int `short:"n" long:"max" required:"yes" description:"Maximum length in bytes"`

	Args struct {
		Input string `positional-arg-name:"input"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *abbreviateCommand) Execute([]string) error {
	return c.app.println(shared.AbbreviateWith([]byte(c.Args.Input), c.Max, []byte(c.app.cfg.Ellipsis)))
}

type trCommand struct {
	Rules []string `short:"r" long:"rule" description:"Substitution FROM=TO of single bytes, first match wins"`

	Args struct {
		Input string `positional-arg-name:"input"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func parseRule(s string) (shared.Rule, error) {
	if len(s) != 3 || s[1] != '=' {
		return shared.Rule{}, fmt.Errorf("%w: rule %q is not FROM=TO", types.ErrInvalidArgument, s)
	}
	return shared.Rule{From: s[0], To: s[2]}, nil
}

func (c *trCommand) Execute([]string) error {
	rules := make([]shared.Rule, 0, len(c.Rules))
	for _, s := range c.Rules {
		r, err := parseRule(s)
		if err != nil {
			return err
		}
		rules = append(rules, r)
	}
	return c.app.println(shared.Tr([]byte(c.Args.Input), rules))
}

type fillCommand struct {
	Args struct {
		Byte  string `positional-arg-name:"byte"`
		Count int    `positional-arg-name:"count"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *fillCommand) Execute([]string) error {
	if len(c.Args.Byte) != 1 {
		return fmt.Errorf("%w: fill needs a single byte, got %q", types.ErrInvalidArgument, c.Args.Byte)
	}
	return c.app.println(shared.Fill(c.Args.Byte[0], c.Args.Count))
}

type joinCommand struct {
	Separator string `short:"s" long:"sep" default:"," description:"Separator placed between items"`

	Args struct {
		Items []string `positional-arg-name:"items"`
	} `positional-args:"yes"`

	app *app
}

func (c *joinCommand) Execute([]string) error {
	items := make([][]byte, 0, len(c.Args.Items))
	for _, item := range c.Args.Items {
		items = append(items, []byte(item))
	}
	return c.app.println(shared.Join(items, []byte(c.Separator)))
}

type formatCommand struct {
	Numbers bool `long:"numbers" description:"Pass numeric arguments as integers or floats instead of text"`

	Args struct {
		Template string   `positional-arg-name:"template" required:"yes"`
		Values   []string `positional-arg-name:"values"`
	} `positional-args:"yes"`

	app *app
}

func (c *formatCommand) Execute([]string) error {
	values := make([]any, 0, len(c.Args.Values))
	for _, v := range c.Args.Values {
		if !c.Numbers {
			values = append(values, v)
			continue
		}
		n, err := shared.ToNumber([]byte(v))
		switch {
		case err != nil:
			values = append(values, v)
		case n.IsInt():
			values = append(values, n.BigInt())
		default:
			values = append(values, n.Float64())
		}
	}
	return c.app.println(shared.Format([]byte(c.Args.Template), values...))
}

type toNumberCommand struct {
	Args struct {
		Input string `positional-arg-name:"input"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *toNumberCommand) Execute([]string) error {
	n, err := shared.ToNumber([]byte(c.Args.Input))
	if err != nil {
		return err
	}
	kind := shared.KindFloat
	if n.IsInt() {
		kind = shared.KindInt
	}
	return c.app.println([]byte(kind.String() + " " + n.String()))
}

type toFloatCommand struct {
	Args struct {
		Input string `positional-arg-name:"input"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *toFloatCommand) Execute([]string) error {
	f, err := shared.ToFloat([]byte(c.Args.Input))
	if err != nil {
		return err
	}
	return c.app.println(shared.ToBytes(shared.Float(f)))
}

type symbolCommand struct {
	Intern   []string         `short:"i" long:"intern"   description:"Intern this name before resolving"`
	Encoding symbols.Encoding `short:"e" long:"encoding" default:"utf8" description:"Encoding of the input: utf8 or latin1"`
	Hex      bool             `long:"hex" description:"The input is hex encoded"`

	Args struct {
		Input string `positional-arg-name:"input"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *symbolCommand) Execute([]string) error {
	for _, name := range c.Intern {
		if _, err := c.app.symbols.Intern(name); err != nil {
			return err
		}
	}

	input := []byte(c.Args.Input)
	if c.Hex {
		var err error
		if input, err = hexutil.DecodeString(c.Args.Input); err != nil {
			return err
		}
	}
	term := symbols.TryExisting(c.app.symbols, input, c.Encoding)
	return c.app.println([]byte(term.Kind().String() + " " + term.String()))
}

// LayoutOptions are the fixed-point layout flags shared by the fixed-* commands.
//
//nolint:lll
type LayoutOptions struct {
	IntegerBits  uint8 `long:"int-bits"  default:"16" description:"Width of the integer part in bits"`
	FractionBits uint8 `long:"frac-bits" default:"16" description:"Width of the fractional part in bits"`
	Signed       bool  `long:"signed"                 description:"Two's complement instead of unsigned"`
}

func (o LayoutOptions) layout() fixedpoint.Layout {
	return fixedpoint.Layout{IntegerBits: o.IntegerBits, FractionBits: o.FractionBits, Signed: o.Signed}
}

type fixedEncodeCommand struct {
	LayoutOptions

	Args struct {
		Value float64 `positional-arg-name:"value"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *fixedEncodeCommand) Execute([]string) error {
	l := c.layout()
	b, err := fixedpoint.Encode(l, c.Args.Value)
	if err != nil {
		return err
	}
	c.app.logger().Debug("encoded fixed-point value", zap.Object("layout", l), zap.Float64("value", c.Args.Value))
	return c.app.println(hexutil.Encode(b))
}

type fixedDecodeCommand struct {
	LayoutOptions
	Bits bool `long:"bits" description:"Print the binary digits instead of the number"`

	Args struct {
		Hex string `positional-arg-name:"hex"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *fixedDecodeCommand) Execute([]string) error {
	b, err := hexutil.DecodeString(c.Args.Hex)
	if err != nil {
		return err
	}
	if c.Bits {
		s, err := fixedpoint.BitString(c.layout(), b)
		if err != nil {
			return err
		}
		return c.app.println([]byte(s))
	}
	x, err := fixedpoint.Decode(c.layout(), b)
	if err != nil {
		return err
	}
	return c.app.println([]byte(strconv.FormatFloat(x, 'g', -1, 64)))
}

//nolint:lll
type randomCommand struct {
	Length int    `short:"l" long:"length" default:"16" description:"Length of each byte string"`
	Count  int    `short:"n" long:"count"  default:"1"  description:"Number of distinct byte strings"`
	Seed   string `long:"seed"                         description:"Hex seed for a reproducible list"`
	Out    string `short:"o" long:"out"                description:"Write the list to this file instead of stdout"`

	app *app
}

func (c *randomCommand) Execute([]string) error {
	src := shared.DefaultSource
	if c.Seed != "" {
		seed, err := hexutil.DecodeString(c.Seed)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		src = hash.NewStream(seed)
	}

	list, err := shared.RandomList(src, c.Length, c.Count)
	if err != nil {
		return err
	}

	if c.Out != "" {
		if err := util.PersistList(c.Out, c.Length, list); err != nil {
			return err
		}
		c.app.logger().Info("saved random list", zap.String("file", c.Out), zap.Int("count", len(list)))
		return nil
	}

	var sb strings.Builder
	for _, b := range list {
		sb.Write(hexutil.Encode(b))
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(c.app.out, sb.String())
	return err
}

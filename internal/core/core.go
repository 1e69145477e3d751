// Package core contains the main struct of the software.
package core

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/pnghide/pnghide/internal/conf"
	"github.com/pnghide/pnghide/internal/logger"
	"github.com/pnghide/pnghide/internal/stego"
)

var version = "v0.0.0"

var defaultConfPaths = []string{
	"pnghide.yml",
	"/usr/local/etc/pnghide.yml",
	"/usr/etc/pnghide.yml",
	"/etc/pnghide/pnghide.yml",
}

var cli struct {
	Version  kong.VersionFlag `help:"print version"`
	Confpath string           `help:"path to a config file. The default is pnghide.yml."`

	Encode struct {
		Input   string `arg:"" help:"path of the PNG file that will carry the message"`
		Type    string `arg:"" help:"4-letter type code of the chunk that will store the message"`
		Message string `arg:"" help:"message to embed"`
		Output  string `arg:"" optional:"" help:"output path. The input file is overwritten when omitted."`
	} `cmd:"" help:"embed a message into a PNG file"`

	Decode struct {
		Input string `arg:"" help:"path of the PNG file"`
		Type  string `arg:"" help:"type code of the chunk that stores the message"`
	} `cmd:"" help:"read back an embedded message"`

	Remove struct {
		Input string `arg:"" help:"path of the PNG file"`
		Type  string `arg:"" help:"type code of the chunk to remove"`
	} `cmd:"" help:"delete an embedded message"`

	Print struct {
		Input string `arg:"" help:"path of the PNG file"`
	} `cmd:"" help:"list the chunks of a PNG file"`
}

// Core is an instance of pnghide.
type Core struct {
	conf   *conf.Conf
	logger *logger.Logger
}

// New allocates a core, runs the requested command and releases resources.
func New(args []string) (*Core, bool) {
	parser, err := kong.New(&cli,
		kong.Description("pnghide "+version),
		kong.UsageOnError(),
		kong.Vars{"version": version})
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	p := &Core{}

	tmpConf, confPath, err := conf.Load(cli.Confpath, defaultConfPaths)
	if err != nil {
		fmt.Printf("ERR: %s\n", err)
		return nil, false
	}
	p.conf = tmpConf

	p.logger = &logger.Logger{
		Level:        logger.Level(p.conf.LogLevel),
		Destinations: p.conf.LogDestinations,
		File:         p.conf.LogFile,
	}
	err = p.logger.Initialize()
	if err != nil {
		fmt.Printf("ERR: %s\n", err)
		return nil, false
	}
	defer p.logger.Close()

	if confPath != "" {
		p.Log(logger.Debug, "configuration loaded from %s", confPath)
	}

	err = p.runCommand(ctx.Command())
	if err != nil {
		p.Log(logger.Error, "%s", err)
		return nil, false
	}

	return p, true
}

// Log writes a log entry.
func (p *Core) Log(level logger.Level, format string, args ...interface{}) {
	p.logger.Log(level, format, args...)
}

func (p *Core) runCommand(cmd string) error {
	switch strings.SplitN(cmd, " ", 2)[0] {
	case "encode":
		err := stego.Embed(cli.Encode.Input, cli.Encode.Type, cli.Encode.Message, cli.Encode.Output)
		if err != nil {
			return err
		}

		out := cli.Encode.Output
		if out == "" {
			out = cli.Encode.Input
		}
		p.Log(logger.Info, "message embedded into %s (chunk %s)", out, cli.Encode.Type)
		return nil

	case "decode":
		msg, err := stego.Extract(cli.Decode.Input, cli.Decode.Type)
		if err != nil {
			return err
		}

		fmt.Println(msg)
		return nil

	case "remove":
		err := stego.Remove(cli.Remove.Input, cli.Remove.Type)
		if err != nil {
			return err
		}

		p.Log(logger.Info, "chunk %s removed from %s", cli.Remove.Type, cli.Remove.Input)
		return nil

	case "print":
		chunks, err := stego.List(cli.Print.Input)
		if err != nil {
			return err
		}

		for i, c := range chunks {
			fmt.Printf("%d: %s\n", i, c)
		}
		return nil
	}

	return fmt.Errorf("unhandled command: %s", cmd)
}

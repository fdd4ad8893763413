package commands

import (
	"flag"

	"github.com/maksimkurb/ip2networkd/src/internal/config"
	"github.com/maksimkurb/ip2networkd/src/internal/snapshot"
)

func CreateLiveCommand() *LiveCommand {
	return &LiveCommand{
		fs:   flag.NewFlagSet("live", flag.ContinueOnError),
		take: snapshot.Take,
	}
}

// LiveCommand converts the running kernel's network state into network units.
type LiveCommand struct {
	fs   *flag.FlagSet
	cfg  *config.Config
	take func() (*snapshot.Snapshot, error)

	OutputDir string
	Written   []string
}

func (l *LiveCommand) Name() string {
	return l.fs.Name()
}

func (l *LiveCommand) Init(args []string, ctx *AppContext) error {
	if err := l.fs.Parse(args); err != nil {
		return err
	}

	rest := l.fs.Args()
	if err := expectArgs(rest, "networkd-directory"); err != nil {
		return err
	}
	l.OutputDir = rest[0]

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	l.cfg = cfg

	return nil
}

func (l *LiveCommand) Run() error {
	snap, err := l.take()
	if err != nil {
		return err
	}

	l.Written, err = generateUnits(l.cfg, snap.Interfaces, snap.IPv4Routes, snap.IPv6Routes, l.OutputDir)
	return err
}

package commands

import (
	"flag"

	"github.com/maksimkurb/ip2networkd/src/internal/config"
	"github.com/maksimkurb/ip2networkd/src/internal/iproute"
)

func CreateGenerateCommand() *GenerateCommand {
	return &GenerateCommand{
		fs: flag.NewFlagSet("generate", flag.ContinueOnError),
	}
}

// GenerateCommand converts saved `ip -j` documents into network units.
type GenerateCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	AddressesFile  string
	IPv4RoutesFile string
	IPv6RoutesFile string
	OutputDir      string

	Written []string
}

func (g *GenerateCommand) Name() string {
	return g.fs.Name()
}

func (g *GenerateCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	rest := g.fs.Args()
	if err := expectArgs(rest, "addresses", "routes-v4", "routes-v6", "networkd-directory"); err != nil {
		return err
	}
	g.AddressesFile, g.IPv4RoutesFile, g.IPv6RoutesFile, g.OutputDir = rest[0], rest[1], rest[2], rest[3]

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	return nil
}

func (g *GenerateCommand) Run() error {
	interfaces, err := iproute.LoadInterfaces(g.AddressesFile)
	if err != nil {
		return err
	}
	ipv4Routes, err := iproute.LoadRoutes(g.IPv4RoutesFile)
	if err != nil {
		return err
	}
	ipv6Routes, err := iproute.LoadRoutes(g.IPv6RoutesFile)
	if err != nil {
		return err
	}

	g.Written, err = generateUnits(g.cfg, interfaces, ipv4Routes, ipv6Routes, g.OutputDir)
	return err
}

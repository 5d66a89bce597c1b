// Copyright 2025 The golzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command golzip compresses and decompresses files in the lzip format.
// Compressing FILE writes FILE.lz, decompressing FILE.lz writes FILE. With
// no file or with - the command works as a filter from standard input to
// standard output.
package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/golzip/lzip"
)

var cli struct {
	Mode       string `kong:"name=mode,enum='compress,decompress',default=compress,help='Operation to apply to the file.'"`
	Decompress bool   `kong:"name=decompress,short=d,default=false,help='Force decompression, same as --mode decompress.'"`
	Level      string `kong:"name=level,enum='fastest,fast,default,max',default=default,help='Compression preset selecting the dictionary size.'"`
	Stdout     bool   `kong:"name=stdout,short=c,default=false,help='Write to standard output and keep the input file.'"`
	Keep       bool   `kong:"name=keep,short=k,default=false,help='Keep (do not delete) the input file.'"`
	Force      bool   `kong:"name=force,short=f,default=false,help='Overwrite an existing output file.'"`
	LogLevel   string `kong:"name=log-level,env=LOG_LEVEL,default=warn,help='Set log level.'"`

	File string `kong:"arg,optional,name=file,default='-',help='File to process, - for standard input.'"`
}

var levels = map[string]lzip.Level{
	"fastest": lzip.Fastest,
	"fast":    lzip.Fast,
	"default": lzip.Default,
	"max":     lzip.Maximum,
}

func main() {
	_ = kong.Parse(&cli,
		kong.Name("golzip"),
		kong.Description("Compress or decompress files in the lzip format."),
		kong.UsageOnError())

	// Adds support for NO_COLOR. More info https://no-color.org/
	_, noColor := os.LookupEnv("NO_COLOR")
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    noColor,
		TimeFormat: time.RFC1123,
	}).With().Timestamp().Logger()

	logLevel, err := zerolog.ParseLevel(cli.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("unknown log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	mode := cli.Mode
	if cli.Decompress {
		mode = "decompress"
	}
	var c coder
	switch mode {
	case "compress":
		c = compressor{level: levels[cli.Level]}
	default:
		c = decompressor{}
	}

	opt := options{stdout: cli.Stdout, keep: cli.Keep, force: cli.Force}
	if err := processFile(cli.File, c, opt); err != nil {
		log.Fatal().Err(err).Msg("golzip failed")
	}
}

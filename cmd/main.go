package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	vector "github.com/Jonas-Zachs/Vector-Iterator"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "build a vector from a list of unsigned integers and serialize it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"out", "o"},
						Value:   "vec.bin",
						Usage:   "name of the file to write the vector to",
					},
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file to read from (default is stdin)",
					},
				},
				Action: func(c *cli.Context) error {
					output := c.String("output")
					if _, err := os.Stat(output); !os.IsNotExist(err) {
						return fmt.Errorf("refusing to over-write existing file: %s", output)
					}
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}

					var reader io.Reader
					if c.IsSet("input") {
						f, err := os.Open(c.String("input"))
						if err != nil {
							return err
						}
						reader = f
						defer f.Close()
					} else {
						reader = os.Stdin
					}

					vec := vector.New[uint64]()
					rdr := bufio.NewReader(reader)
					start := time.Now()
					for {
						l, _, err := rdr.ReadLine()
						if err != nil {
							if err == io.EOF {
								break
							}
							return err
						}
						s := strings.TrimSpace(string(l))
						if s == "" {
							continue
						}
						val, err := strconv.ParseUint(s, 10, 64)
						if err != nil {
							return fmt.Errorf("build: %q is not an unsigned integer: %w", s, err)
						}
						vec.Push(val)
					}
					log.Printf("built vector of %d elements (capacity %d) in %s",
						vec.Len(), vec.Cap(), time.Since(start))
					o, e := os.Create(output)
					if e != nil {
						return fmt.Errorf("error opening %s: %s", output, e)
					}
					defer o.Close()
					if n, err := vec.WriteTo(o); err != nil {
						return fmt.Errorf("error writing vector: %s", err)
					} else {
						log.Printf("wrote %d bytes to %s", n, output)
					}
					return nil
				},
			},
			{
				Name:  "describe",
				Usage: "read the header from a serialized vector and describe it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file containing a serialized vector",
					},
				},
				Action: func(c *cli.Context) error {
					h, err := vector.ReadHeaderFromPath(c.String("i"))
					if err != nil {
						return fmt.Errorf("describe: can't read input file: %w", err)
					}
					h.Explain()
					return nil
				},
			},
			{
				Name:  "dump",
				Usage: "load a serialized vector and print its contents",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file containing a serialized vector",
					},
					&cli.BoolFlag{
						Name:    "reverse",
						Aliases: []string{"r"},
						Usage:   "print back to front",
					},
				},
				Action: func(c *cli.Context) error {
					f, err := os.Open(c.String("i"))
					if err != nil {
						return fmt.Errorf("dump: can't read input file: %w", err)
					}
					defer f.Close()
					vec := vector.New[uint64]()
					if _, err := vec.ReadFrom(f); err != nil {
						return fmt.Errorf("dump: %w", err)
					}
					if c.Bool("reverse") {
						for it := vec.CEnd(); it != vec.CBegin(); {
							it.Prev()
							fmt.Println(it.Value())
						}
					} else {
						for it := vec.CBegin(); it != vec.CEnd(); it.Next() {
							fmt.Println(it.Value())
						}
					}
					return nil
				},
			},
			{
				Name:  "reverse",
				Usage: "reverse a serialized vector in place on disk",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file containing a serialized vector",
					},
				},
				Action: func(c *cli.Context) error {
					path := c.String("i")
					f, err := os.Open(path)
					if err != nil {
						return fmt.Errorf("reverse: can't read input file: %w", err)
					}
					vec := vector.New[uint64]()
					if _, err := vec.ReadFrom(f); err != nil {
						f.Close()
						return fmt.Errorf("reverse: %w", err)
					}
					f.Close()
					vec.Reverse()
					o, err := os.Create(path)
					if err != nil {
						return fmt.Errorf("reverse: error opening %s: %s", path, err)
					}
					defer o.Close()
					n, err := vec.WriteTo(o)
					if err != nil {
						return fmt.Errorf("reverse: error writing vector: %s", err)
					}
					log.Printf("wrote %d bytes to %s", n, path)
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// Command keygen bulk-generates identities matching an address-prefix
// filter, printing progress to the terminal as it works.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/meshveil/identity/pkg/genpool"
	"github.com/meshveil/identity/pkg/identity"
)

const warning = "The Content of this file is VERY sensitive!\nAll the keys here are UNENCRYPTED!\nIf you are using any of these keys, don't share them with ANYONE!\n"

var (
	match    = ""
	count    = 10
	threads  = runtime.NumCPU()
	anywhere = false
	variant  = 0
	nowarn   = false
	file     = ""
)

func main() {
	flag.StringVar(&match, "m", match, "Specify an address prefix filter to match")
	flag.BoolVar(&anywhere, "a", anywhere, "Matches anywhere in the address (not just at the start)")
	flag.IntVar(&count, "c", count, "Specify an amount of identities to generate")
	flag.IntVar(&threads, "t", threads, "Number of threads")
	flag.IntVar(&variant, "v", variant, "Identity variant (0 = C25519, 1 = P384)")
	flag.BoolVar(&nowarn, "nw", nowarn, "No warning above output")
	flag.StringVar(&file, "f", file, "Output file")
	flag.Parse()

	v := identity.Variant(variant)
	if !v.Valid() {
		fmt.Fprintln(os.Stderr, "unsupported variant")
		os.Exit(1)
	}

	if !anywhere && !strings.HasPrefix(match, "^") {
		match = "^" + match
	}
	regex := regexp.MustCompile(match)

	fmt.Print("\033[s\033[?25l")
	defer fmt.Print("\033[?25h")
	func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-c
			fmt.Print("\033[?25h")
			os.Exit(0)
		}()
	}()

	matched := make([]*identity.Identity, 0, count)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	genpool.Run(genpool.Options{
		Variant:     v,
		Threads:     threads,
		Count:       1 << 30, // unbounded; we stop the underlying pool via ctx once matched is full
		TickTimeout: time.Second / 2,
		Ctx:         ctx,
		DidTick: func(started time.Time, last *identity.Identity, accepted int, attempts uint64) {
			if last != nil && regex.MatchString(last.Address().String()) {
				matched = append(matched, last)
			}

			fmt.Print("\033[u")
			fmt.Printf("Progress: [%d/%d] %d\033[K\n", len(matched), count, attempts)
			fmt.Printf("Time elapsed: %s\033[K\n", time.Since(started))
			if last != nil {
				fmt.Printf("Last: %s\033[K\n", last.Address().String())
			}

			if len(matched) >= count {
				cancel()
			}
		},
	})

	fmt.Println()

	out := os.Stdout
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			out = f
			defer f.Close()
		}
	}

	writeIdentities(matched, out, !nowarn)
}

func writeIdentities(ids []*identity.Identity, out *os.File, warn bool) {
	if warn {
		out.WriteString(warning + "\n")
	}

	for _, id := range ids {
		out.WriteString("Address: " + id.Address().String() + "\n")
		out.WriteString("Identity:\n" + id.String() + "\n\n")
	}
}

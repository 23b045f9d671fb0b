// Text file viewer with a momentum scroll panel.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/jmigpin/scrollpanel/viewer"
)

func main() {
	log.SetFlags(log.Llongfile)
	if err := main2(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main2() error {
	opt := viewer.DefaultOptions()

	flag.BoolVar(&opt.MomentumScroll, "momentum", opt.MomentumScroll, "wheel scrolling with momentum")
	flag.IntVar(&opt.FPS, "fps", opt.FPS, "frames per second")
	flag.StringVar(&opt.FontFilename, "font", "", "ttf font filename, empty uses go mono")
	flag.Float64Var(&opt.FontSize, "fontsize", opt.FontSize, "")
	flag.Float64Var(&opt.DPI, "dpi", opt.DPI, "")
	flag.IntVar(&opt.WindowSize.X, "width", opt.WindowSize.X, "window width")
	flag.IntVar(&opt.WindowSize.Y, "height", opt.WindowSize.Y, "window height")
	flag.StringVar(&opt.TrackColor, "trackcolor", "", "scrollbar track color (#rrggbb)")
	flag.StringVar(&opt.ThumbColor, "thumbcolor", "", "scrollbar thumb color (#rrggbb)")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	args := flag.Args()
	if len(args) > 1 {
		return fmt.Errorf("expecting at most one filename")
	}
	if len(args) == 1 {
		opt.Filename = args[0]
	}

	v, err := viewer.NewViewer(opt)
	if err != nil {
		return err
	}
	return v.Run()
}

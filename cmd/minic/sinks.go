package main

import (
	"os"

	"github.com/reusee/minic/compiler"
	"github.com/reusee/minic/exports"
	"github.com/reusee/minic/minicconfigs"
)

type sinkPaths struct {
	json  string
	html  string
	pages string
}

func (s sinkPaths) empty() bool {
	return s == sinkPaths{}
}

func writeFile(path string, write func(*os.File) error) (err error) {
	defer he(&err)
	f, err := os.Create(path)
	ce(err)
	defer func() {
		ce(f.Close())
	}()
	ce(write(f))
	return nil
}

func writeSinks(paths sinkPaths, source string, result *compiler.Result, page minicconfigs.PageSize) (err error) {
	defer he(&err)

	if paths.json != "" {
		ce(writeFile(paths.json, func(f *os.File) error {
			return exports.JSON(f, source)
		}))
	}

	if paths.html != "" {
		ce(writeFile(paths.html, func(f *os.File) error {
			return exports.HTML(f, result)
		}))
	}

	if paths.pages != "" {
		ce(writeFile(paths.pages, func(f *os.File) error {
			return exports.Pages(f, exports.Paginate(result.Report(), page.Width, page.Lines))
		}))
	}

	return nil
}

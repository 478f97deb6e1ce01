package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/web"
)

// These are files/dirs within the embedded filesystem 'web'
const base = "templates/base.html"
const components = "templates/components"
const blocks = "templates/blocks"
const partials = "templates/partials"
const sitemaps = "templates/sitemaps"

// Parse the templates and create a template map.
// Every partial gets its own clone of the base,
// the components and the block templates.
func parseTemplates(m *minify.M, funcs template.FuncMap) models.TemplateMap {

	templateMap := make(models.TemplateMap)

	shared := []string{base}
	shared = append(shared, listFiles(components)...)
	shared = append(shared, listFiles(blocks)...)

	root := template.New(filepath.Base(base)).Funcs(funcs)
	baseTemplate := template.Must(parseTemplateFiles(m, root, shared...))

	// Function used to process each file/dir in the root, including the root
	walkDirFunc := func(path string, info fs.DirEntry, err error) error {

		// Returning back the error will cause WalkDir to stop walking the entire tree.
		if err != nil {
			return err
		}

		// Skip directories
		if info.IsDir() {
			return nil
		}

		// Extract the template name
		name := filepath.Base(path)

		// Sitemaps stand on their own
		tmpl := template.New(name).Funcs(funcs)
		if !strings.Contains(path, "sitemaps") {
			tmpl, err = baseTemplate.Clone()
			if err != nil {
				log.Fatalf("couldn't clone the base '%s' template", base)
			}
		}

		templateMap[name] = template.Must(parseTemplateFiles(m, tmpl, path))
		return nil
	}

	// Walk the directory and parse each template in partials
	if err := fs.WalkDir(web.Files, partials, walkDirFunc); err != nil {
		log.Fatal(err)
	}

	// Walk the directory and parse each template in sitemaps
	if err := fs.WalkDir(web.Files, sitemaps, walkDirFunc); err != nil {
		log.Fatal(err)
	}

	return templateMap
}

// listFiles lists the files in an embedded directory
func listFiles(dir string) []string {

	entries, err := fs.ReadDir(web.Files, dir)
	if err != nil {
		log.Fatal(err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, dir+"/"+e.Name())
		}
	}

	return files
}

// Minify and parse the HTML templates as per the tdewolff/minify docs.
func parseTemplateFiles(m *minify.M, tmpl *template.Template, filepaths ...string) (*template.Template, error) {

	for _, fp := range filepaths {

		b, err := fs.ReadFile(web.Files, fp)
		if err != nil {
			return nil, err
		}

		name := filepath.Base(fp)
		if tmpl.Name() != name {
			tmpl = tmpl.New(name)
		}

		// Set media type
		var mediaType string
		switch filepath.Ext(name) {
		case ".html":
			mediaType = "text/html"
		case ".xml", ".xsl":
			mediaType = "text/xml"
		}

		if mediaType == "" {
			return nil, fmt.Errorf("unknown media type: %s", fp)
		}

		mb, err := m.Bytes(mediaType, b)
		if err != nil {
			return nil, err
		}

		tmpl, err = tmpl.Parse(string(mb))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fp, err)
		}
	}

	return tmpl, nil
}

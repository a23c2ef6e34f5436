package template

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Global template variable accessible to other packages
var Templates *template.Template

// InitTemplates parses every page template once at startup.
func InitTemplates() {
	log.Printf("🚀 Initializing templates...")

	funcMap := template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"add": func(a, b int) int {
			return a + b
		},
	}

	var err error
	Templates, err = template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		log.Fatalf("❌ Could not parse templates: %v", err)
	}

	log.Printf("✅ Templates initialized successfully")
	log.Printf("📋 Available templates: %v", Templates.DefinedTemplates())
}

func RenderTemplate(w http.ResponseWriter, name string, data interface{}) error {
	err := Templates.ExecuteTemplate(w, name, data)
	if err != nil {
		log.Printf("❌ Error rendering template %s: %v", name, err)
	}
	return err
}

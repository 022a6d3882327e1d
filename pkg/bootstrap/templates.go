package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lqh2307/mapproxy/pkg/tools"
)

// WriteBuiltinTemplate renders the built-in fallback for the given template
// name. It mirrors the external tool's contract: base-config populates a
// configuration directory with the main/seed pair, log-ini writes a single
// file. Existing files are never overwritten.
func WriteBuiltinTemplate(template string, target string) error {
	switch template {
	case TemplateBaseConfig:
		if err := tools.EnsureDir(target); err != nil {
			return err
		}
		if err := writeIfAbsent(filepath.Join(target, "mapproxy.yaml"), mainConfigTemplate); err != nil {
			return err
		}
		return writeIfAbsent(filepath.Join(target, "seed.yaml"), seedConfigTemplate)
	case TemplateLogIni:
		return writeIfAbsent(target, logConfigTemplate)
	default:
		return fmt.Errorf("unknown template: %s", template)
	}
}

func writeIfAbsent(path string, content string) error {
	if tools.Exists(path) {
		return nil
	}
	return os.WriteFile(path, []byte(content), 0644)
}

const mainConfigTemplate = `services:
  demo:
  tms:
    use_grid_names: true
  wmts:
  wms:
    md:
      title: MapProxy WMS Proxy
      abstract: This is a minimal MapProxy configuration.

layers:
  - name: osm
    title: OpenStreetMap (demo)
    sources: [osm_cache]

caches:
  osm_cache:
    grids: [webmercator]
    sources: [osm_wms]

sources:
  osm_wms:
    type: wms
    req:
      url: https://maps.omniscale.net/wms/demo/default/service?
      layers: osm

grids:
  webmercator:
    base: GLOBAL_WEBMERCATOR
`

const seedConfigTemplate = `seeds:
  base:
    caches: [osm_cache]
    grids: [webmercator]
    levels:
      from: 0
      to: 5
`

const logConfigTemplate = `[loggers]
keys=root,mapproxy

[handlers]
keys=console

[formatters]
keys=default

[logger_root]
level=WARNING
handlers=console

[logger_mapproxy]
level=INFO
handlers=console
qualname=mapproxy
propagate=0

[handler_console]
class=StreamHandler
formatter=default
args=(sys.stderr,)

[formatter_default]
format=%(asctime)s - %(name)s - %(levelname)s - %(message)s
`

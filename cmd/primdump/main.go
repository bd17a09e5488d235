// Command primdump loads a YAML scene description, converts every primitive
// with the selected backend and prints the resulting node parameters.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/primkit"
	"github.com/gogpu/primkit/backend"
	_ "github.com/gogpu/primkit/backend/gpu"
	"github.com/gogpu/primkit/convert"
	"github.com/gogpu/primkit/node"
	"github.com/gogpu/primkit/sceneio"
)

func main() {
	var (
		scenePath   = flag.String("scene", "", "scene description file (YAML)")
		backendName = flag.String("backend", "", "backend to use (default: best available)")
		verbose     = flag.Bool("v", false, "log conversion warnings to stderr")
	)
	flag.Parse()

	if *scenePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		primkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	b, err := selectBackend(*backendName)
	if err != nil {
		log.Fatalf("Failed to select backend: %v", err)
	}
	defer b.Close()

	scene, err := sceneio.LoadFile(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	for _, np := range scene.Primitives {
		n, err := convertPrimitive(b, np)
		if err != nil {
			log.Fatalf("Failed to convert %q: %v", np.Name, err)
		}
		dumpNode(n)
	}
}

func selectBackend(name string) (backend.Backend, error) {
	if name == "" {
		return backend.InitDefault()
	}
	b := backend.Get(name)
	if b == nil {
		return nil, fmt.Errorf("backend %q not registered (available: %v)", name, backend.Available())
	}
	if err := b.Init(); err != nil {
		return nil, err
	}
	return b, nil
}

func convertPrimitive(b backend.Backend, np sceneio.NamedPrimitive) (node.Node, error) {
	switch p := np.Prim.(type) {
	case *primkit.Points:
		n, err := b.NewNode("points", np.Name)
		if err != nil {
			return nil, err
		}
		return n, convert.PointCloud(n, p)
	case *primkit.Curves:
		n, err := b.NewNode("curves", np.Name)
		if err != nil {
			return nil, err
		}
		return n, convert.CurveSet(n, p)
	case *primkit.Mesh:
		n, err := b.NewNode("polymesh", np.Name)
		if err != nil {
			return nil, err
		}
		return n, convert.PolyMesh(n, p)
	default:
		return nil, fmt.Errorf("no converter for %T", np.Prim)
	}
}

// paramLister is the inspection side of a node; both backends provide it.
type paramLister interface {
	Name() string
	Type() string
	Param(name string) (*node.Param, bool)
	ParamNames() []string
}

func dumpNode(n node.Node) {
	pl, ok := n.(paramLister)
	if !ok {
		fmt.Printf("%s (%s)\n", n.Name(), n.Type())
		return
	}
	fmt.Printf("%s (%s)\n", pl.Name(), pl.Type())
	for _, name := range pl.ParamNames() {
		p, _ := pl.Param(name)
		fmt.Printf("  %-16s %-24s %s\n", name, declOf(p), valueOf(p))
	}
}

func declOf(p *node.Param) string {
	if p.Builtin {
		return "built-in"
	}
	return p.Decl
}

func valueOf(p *node.Param) string {
	switch {
	case p.Array != nil && p.Array.Keys > 1:
		return fmt.Sprintf("%d elements x %d keys", p.Array.Count, p.Array.Keys)
	case p.Array != nil:
		return fmt.Sprintf("%d elements", p.Array.Count)
	case p.Value != nil:
		return fmt.Sprint(p.Value)
	default:
		return "(unset)"
	}
}

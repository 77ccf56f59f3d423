// Command natalie-embed is a minimal embedding host: it boots a Runtime,
// pre-registers a small class hierarchy from a YAML manifest, attaches a
// few native methods, and drives some calls through the Dispatcher,
// printing whatever escapes to the top-level exception handler. It plays
// the role cmd/io plays for zephyrtronium/iolang: a thin,
// compiled driver program exercising the embedding surface rather than
// anything the core itself depends on.
package main

import (
	"flag"
	"fmt"
	"os"

	natalie "github.com/kddnewton/natalie"
)

func main() {
	manifestPath := flag.String("manifest", "cmd/natalie-embed/bootstrap.yaml", "bootstrap manifest path")
	flag.Parse()

	m, err := loadManifest(*manifestPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "natalie-embed:", err)
		os.Exit(1)
	}

	rt := natalie.NewRuntime()
	classes := m.apply(rt)

	wireDemoMethods(rt, classes)

	env := rt.NewTopEnv()
	env.File = "natalie-embed"
	env.Method = "main"

	rt.Run(env, func(env *natalie.Env) natalie.Value {
		dog := rt.NewObject(classes["Dog"])

		result := rt.Send(env, dog, "greet", nil, nil)
		if s, ok := result.(*natalie.StringValue); ok {
			fmt.Println(s.Str)
		}

		result = rt.Send(env, dog, "speak", nil, nil)
		if s, ok := result.(*natalie.StringValue); ok {
			fmt.Println(s.Str)
		}

		// Calling a method nothing defines demonstrates the top-level
		// exception handler's backtrace formatting.
		return rt.Send(env, dog, "fly", nil, nil)
	})
}

func wireDemoMethods(rt *natalie.Runtime, classes map[string]*natalie.Class) {
	classes["Greetable"].DefineMethod("greet", func(env *natalie.Env, self natalie.Value, args []natalie.Value, block *natalie.Block) natalie.Value {
		class := natalie.Send(rt, env, self, "class", nil, nil)
		name := ""
		if c, ok := class.(*natalie.Class); ok {
			name = c.Name
		}
		return rt.NewString(fmt.Sprintf("Hello, I am a %s", name))
	})

	classes["Animal"].DefineMethod("speak", func(env *natalie.Env, self natalie.Value, args []natalie.Value, block *natalie.Block) natalie.Value {
		return rt.NewString("...")
	})

	classes["Dog"].DefineMethod("speak", func(env *natalie.Env, self natalie.Value, args []natalie.Value, block *natalie.Block) natalie.Value {
		return rt.NewString("Woof!")
	})
}

package postprocessing_test

import (
	"fmt"

	"github.com/Tech-Intent/postprocessing"
)

// Example shows the life of a blur configuration inside a render loop:
// configure once, sync scene state, then recompile only when a
// define-affecting value changed.
func Example() {
	cfg := postprocessing.NewBlurConfig(
		postprocessing.WithKernelSize(3),
		postprocessing.WithBilateral(true),
	)
	cfg.SyncCamera(&postprocessing.CameraState{
		Near:       1,
		Far:        100,
		Projection: postprocessing.ProjectionPerspective,
	})
	cfg.SetWorldDistanceThreshold(5)
	cfg.SetSize(1920, 1080)

	if cfg.NeedsRecompile() {
		// The pipeline would rebuild the program from cfg.Defines() here.
		cfg.MarkCompiled()
	}

	fmt.Println("kernel:", cfg.KernelSize())
	fmt.Printf("threshold: %.4f\n", cfg.WorldDistanceThreshold())
	fmt.Println("recompile:", cfg.NeedsRecompile())

	// Resizing is uniform-only and never forces a recompile.
	cfg.SetSize(1280, 720)
	fmt.Println("recompile after resize:", cfg.NeedsRecompile())

	// Output:
	// kernel: 3
	// threshold: 5.0000
	// recompile: false
	// recompile after resize: false
}

// ExampleBlurConfig_SetKernelSize demonstrates kernel validation.
func ExampleBlurConfig_SetKernelSize() {
	cfg := postprocessing.NewBlurConfig()

	if err := cfg.SetKernelSize(4); err != nil {
		fmt.Println(err)
	}
	fmt.Println("kernel still:", cfg.KernelSize())

	// Output:
	// postprocessing: invalid kernel size: 4 is even, must be odd
	// kernel still: 5
}

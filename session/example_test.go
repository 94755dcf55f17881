package session_test

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/spherelab/session"
	"github.com/katalvlaran/spherelab/sphere"
)

// ExampleSession_Analyze loads the octahedron and inspects its structure.
func ExampleSession_Analyze() {
	s, err := session.New(session.WithLogger(zerolog.Nop()), session.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	oct, _ := sphere.Platonic(sphere.Octahedron)
	if err := s.SetPoints(oct); err != nil {
		fmt.Println(err)
		return
	}

	a, err := s.Analyze(context.Background(), session.AnalyzeOptions{Force: true})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("layers=%d counts=%v\n", a.Structure.Layer.K, a.Structure.Layer.Counts)
	fmt.Printf("contact degree=%d regular=%t\n", a.Structure.Contact.Degrees[0], a.Degrees.Regular)
	fmt.Printf("design strength=%d\n", a.Design.Strength)
	// Output:
	// layers=2 counts=[3 12]
	// contact degree=4 regular=true
	// design strength=3
}

package operator

import (
	"errors"
	"fmt"
)

// Scene is an in-memory Collection. Linked objects with a name already in use
// get a numeric suffix: Tetrahedron, Tetrahedron.001, Tetrahedron.002...
type Scene struct {
	objects []MeshObject
	names   map[string]int
}

// Link adds obj to the scene under a unique name.
func (s *Scene) Link(obj MeshObject) error {
	if obj.Name == "" {
		return errors.New("mesh object has no name")
	}
	if len(obj.Vertices) < 3 {
		return fmt.Errorf("mesh object %q has %d vertices", obj.Name, len(obj.Vertices))
	}
	for _, f := range obj.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(obj.Vertices) {
				return fmt.Errorf("mesh object %q face %v references missing vertex", obj.Name, f)
			}
		}
	}
	if s.names == nil {
		s.names = make(map[string]int)
	}
	base := obj.Name
	if n := s.names[base]; n > 0 {
		obj.Name = fmt.Sprintf("%s.%03d", base, n)
	}
	s.names[base]++
	s.objects = append(s.objects, obj)
	return nil
}

// Objects returns the linked objects in link order.
func (s *Scene) Objects() []MeshObject { return s.objects }

// Len returns the number of linked objects.
func (s *Scene) Len() int { return len(s.objects) }

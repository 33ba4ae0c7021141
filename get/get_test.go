package get_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"litgen/get"
)

type seven struct{}

func (seven) Get() uint32 { return 7 }

type eleven struct{}

func (eleven) Get() uint32 { return 11 }

type greeting struct{}

func (greeting) Get() string { return "hello" }

func TestOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(7), get.Of[uint32, seven]())
	assert.Equal(t, uint32(11), get.Of[uint32, eleven]())
	assert.Equal(t, "hello", get.Of[string, greeting]())
}

func TestGetter_Polymorphic(t *testing.T) {
	t.Parallel()

	getters := []get.Getter[uint32]{seven{}, eleven{}, seven{}}

	var sum uint32
	for _, g := range getters {
		sum += g.Get()
	}

	assert.Equal(t, uint32(25), sum)
}

func TestGetter_Memoizable(t *testing.T) {
	t.Parallel()

	first := get.Of[uint32, seven]()
	for range 10 {
		assert.Equal(t, first, get.Of[uint32, seven]())
	}
}

func TestImportPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, get.ImportPath, reflect.TypeFor[get.Getter[int]]().PkgPath())
}

package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	calls := 0
	build := func(key string) (interface{}, error) {
		calls++
		return len(key), nil
	}
	v, err := Load("test-load-once", build)
	is.NoErr(err)
	is.Equal(v.(int), 14)
	v, err = Load("test-load-once", build)
	is.NoErr(err)
	is.Equal(v.(int), 14)
	is.Equal(calls, 1)
}

func TestFailedLoadIsRetried(t *testing.T) {
	is := is.New(t)
	fail := true
	build := func(key string) (interface{}, error) {
		if fail {
			return nil, errors.New("not yet")
		}
		return "ok", nil
	}
	_, err := Load("test-retry", build)
	is.True(err != nil)
	fail = false
	v, err := Load("test-retry", build)
	is.NoErr(err)
	is.Equal(v.(string), "ok")
}

package test

import (
	"regexp"
	"runtime"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// Test bootstraps a ginkgo suite named after the calling test package.
func Test(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, suiteName())
}

var testPackageRegexp = regexp.MustCompile(`^(.+?)_test[^/]*$`)

func suiteName() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "Suite"
	}

	frame := runtime.FuncForPC(pc).Name()
	if matches := testPackageRegexp.FindStringSubmatch(frame); matches != nil {
		return matches[1]
	}
	return frame
}

package cache_test

import (
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itparc/asset-management/internal/core/cache"
)

func TestCache(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cache Suite")
}

var _ = Describe("TTLCache", func() {
	var c *cache.TTLCache

	BeforeEach(func() {
		c = cache.NewTTLCache()
	})

	Describe("Get and Set", func() {
		It("returns stored values before expiry", func() {
			c.Set("k", 42, time.Minute)

			v, ok := c.Get("k")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(42))
		})

		It("misses on absent keys", func() {
			_, ok := c.Get("missing")
			Expect(ok).To(BeFalse())
		})

		It("expires entries after their TTL", func() {
			c.Set("k", "v", time.Millisecond)
			time.Sleep(5 * time.Millisecond)

			_, ok := c.Get("k")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("GetOrCompute", func() {
		It("computes once and serves the cached value afterwards", func() {
			calls := 0
			compute := func() (any, error) {
				calls++
				return "result", nil
			}

			v1, err := c.GetOrCompute("k", time.Minute, compute)
			Expect(err).ToNot(HaveOccurred())
			v2, err := c.GetOrCompute("k", time.Minute, compute)
			Expect(err).ToNot(HaveOccurred())

			Expect(v1).To(Equal("result"))
			Expect(v2).To(Equal("result"))
			Expect(calls).To(Equal(1))
		})

		It("does not cache compute failures", func() {
			boom := errors.New("boom")
			_, err := c.GetOrCompute("k", time.Minute, func() (any, error) {
				return nil, boom
			})
			Expect(err).To(MatchError(boom))

			_, ok := c.Get("k")
			Expect(ok).To(BeFalse())
		})
	})
})

package roche_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/binarylab/internal/roche"
)

func TestRoche(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Roche Suite")
}

var _ = Describe("Roche potential on the Lagrange-sized domain", func() {
	var (
		params roche.Params
		lp     roche.LagrangePoints
	)

	BeforeEach(func() {
		params = roche.Params{M1: 1, M2: 1, Separation: 1, Omega: 1}
		lp = roche.EstimateLagrangePoints(params.M1, params.M2, params.Separation)
	})

	It("produces a finite 200x200 grid", func() {
		g, err := roche.Evaluate(params, lp.Domain(), roche.DefaultResolution)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Rows()).To(Equal(200))
		Expect(g.Cols()).To(Equal(200))
		Expect(g.Validate()).To(Succeed())

		for _, row := range g.Values {
			for _, v := range row {
				Expect(math.IsNaN(v) || math.IsInf(v, 0)).To(BeFalse())
				Expect(v).To(BeNumerically(">=", roche.CompressFloor))
			}
		}
	})

	It("is mirror symmetric about the x-axis", func() {
		g, err := roche.Evaluate(params, lp.Domain(), roche.DefaultResolution)
		Expect(err).NotTo(HaveOccurred())

		n := g.Rows()
		for j := 0; j < n/2; j++ {
			for i := 0; i < g.Cols(); i++ {
				Expect(g.At(j, i)).To(BeNumerically("~", g.At(n-1-j, i), 1e-9))
			}
		}
	})

	It("spans the recommended extent", func() {
		g, err := roche.Evaluate(params, lp.Domain(), roche.DefaultResolution)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.X[0]).To(BeNumerically("~", -lp.Extent, 1e-12))
		Expect(g.X[len(g.X)-1]).To(BeNumerically("~", lp.Extent, 1e-12))
		Expect(g.Y[0]).To(BeNumerically("~", -lp.Extent, 1e-12))
	})

	Context("when the masses differ", func() {
		BeforeEach(func() {
			params = roche.Params{M1: 4, M2: 0.5, Separation: 2.5, Omega: 0.6}
			lp = roche.EstimateLagrangePoints(params.M1, params.M2, params.Separation)
		})

		It("still keeps every cell finite", func() {
			g, err := roche.Evaluate(params, lp.Domain(), 120)
			Expect(err).NotTo(HaveOccurred())
			min, max := g.Bounds()
			Expect(max).To(BeNumerically(">", min))
		})
	})
})

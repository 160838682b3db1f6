package beers

import "testing"

func TestListCacheKeyIsInjective(t *testing.T) {
	cases := []struct {
		name  string
		left  [2]string
		right [2]string
	}{
		{"separator inside name vs split across filters", [2]string{"Stout:Lovers", ""}, [2]string{"Stout", "Lovers:"}},
		{"name-only vs style-only", [2]string{"X", ""}, [2]string{"", "X"}},
		{"trailing separator vs empty style", [2]string{"Stout:", ""}, [2]string{"Stout", ":"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			left := listCacheKey(tc.left[0], tc.left[1], 0, 25)
			right := listCacheKey(tc.right[0], tc.right[1], 0, 25)
			if left == right {
				t.Fatalf("distinct filter tuples share key %q", left)
			}
		})
	}
}

func TestListCacheKeyStableForSameTuple(t *testing.T) {
	first := listCacheKey("Mango Bobs", "IPA", 1, 10)
	second := listCacheKey("Mango Bobs", "IPA", 1, 10)
	if first != second {
		t.Fatalf("same tuple produced different keys: %q vs %q", first, second)
	}
}

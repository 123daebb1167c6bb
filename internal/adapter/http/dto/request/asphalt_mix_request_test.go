package request

import "testing"

func TestCreateMixRequest_ResolveMixID(t *testing.T) {
	r := CreateMixRequest{MixID: " hma-sp-12.5 "}
	if got := r.ResolveMixID(); got != "hma-sp-12.5" {
		t.Fatalf("expected hma-sp-12.5, got %q", got)
	}
}

func TestPatchMixRequest_ToPatch(t *testing.T) {
	price := 120.0
	active := false
	r := PatchMixRequest{PricePerTon: &price, Active: &active}

	p := r.ToPatch()
	if p.PricePerTon == nil || *p.PricePerTon != 120 {
		t.Fatalf("unexpected price: %+v", p)
	}
	if p.Active == nil || *p.Active {
		t.Fatalf("unexpected active: %+v", p)
	}
	if p.Description != nil || p.AvailableForOrders != nil {
		t.Fatalf("untouched fields should stay nil: %+v", p)
	}
	if p.Empty() {
		t.Fatalf("patch with fields set should not be empty")
	}

	if !(PatchMixRequest{}).ToPatch().Empty() {
		t.Fatalf("empty request should produce an empty patch")
	}
}

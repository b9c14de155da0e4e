package admin

import "testing"

func TestLookup(t *testing.T) {
	resource, ok := Lookup("applications")
	if !ok {
		t.Fatal("applications resource should be registered")
	}
	if resource.Name != "applications" {
		t.Errorf("resource.Name = %q, want \"applications\"", resource.Name)
	}

	if _, ok := Lookup("invoices"); ok {
		t.Error("Lookup should miss on an unregistered resource")
	}
}

func TestResourcesComplete(t *testing.T) {
	want := []string{"users", "companies", "jobs", "applications", "interviews", "application_notes"}

	resources := Resources()
	if len(resources) != len(want) {
		t.Fatalf("Resources() returned %d entries, want %d", len(resources), len(want))
	}

	for i, name := range want {
		if resources[i].Name != name {
			t.Errorf("resources[%d].Name = %q, want %q", i, resources[i].Name, name)
		}
		if len(resources[i].Fields) == 0 {
			t.Errorf("resource %q has no fields", name)
		}
		if resources[i].Title == "" {
			t.Errorf("resource %q has no title attribute", name)
		}
	}
}

func TestSelectFieldsHaveOptions(t *testing.T) {
	for _, resource := range Resources() {
		for _, field := range resource.Fields {
			if field.Type == "select" && len(field.Options) == 0 {
				t.Errorf("%s.%s is a select without options", resource.Name, field.Name)
			}
		}
	}
}

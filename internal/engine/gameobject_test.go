package engine

import "testing"

type probe struct {
	BaseComponent
	log *[]string
}

func (p *probe) Start()                             { *p.log = append(*p.log, "start") }
func (p *probe) Update(deltaTime float32)           { *p.log = append(*p.log, "update") }
func (p *probe) Draw3D()                            { *p.log = append(*p.log, "draw") }
func (p *probe) OnMouseOver()                       { *p.log = append(*p.log, "over") }
func (p *probe) OnMouseOut()                        { *p.log = append(*p.log, "out") }
func (p *probe) OnCollisionEnter(other *GameObject) { *p.log = append(*p.log, "hit "+other.Name) }
func (p *probe) OnDestroy()                         { *p.log = append(*p.log, "destroy") }

func TestNewGameObjectHasUniqueUID(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")

	if a.UID == 0 || b.UID == 0 {
		t.Error("UID should never be 0")
	}
	if a.UID == b.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if !a.Active {
		t.Error("new GameObjects start active")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Duck")
	obj.Tags = []string{"prop", "sphere"}

	if !obj.HasTag("sphere") {
		t.Error("HasTag should find an existing tag")
	}
	if obj.HasTag("terrain") {
		t.Error("HasTag should not find a missing tag")
	}
	if NewGameObject("Empty").HasTag("prop") {
		t.Error("untagged object should have no tags")
	}
}

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	var log []string
	p := &probe{log: &log}
	obj.AddComponent(&BaseComponent{})
	obj.AddComponent(p)

	if p.GetGameObject() != obj {
		t.Error("AddComponent should set the owner")
	}
	if GetComponent[*probe](obj) != p {
		t.Error("GetComponent should find the probe")
	}
	if GetComponent[Drawer3D](obj) != p {
		t.Error("GetComponent should match interfaces too")
	}
	if GetComponent[*Tracker](obj) != nil {
		t.Error("GetComponent should return nil for a missing type")
	}
}

func TestGameObjectLifecycle(t *testing.T) {
	var log []string
	obj := NewGameObject("Test")
	obj.AddComponent(&probe{log: &log})

	obj.Start()
	obj.Start()
	obj.Update(0.1)
	obj.Draw3D()

	obj.Active = false
	obj.Update(0.1)
	obj.Draw3D()

	want := []string{"start", "update", "draw"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestGameObjectForwardsEvents(t *testing.T) {
	var log []string
	obj := NewGameObject("Prop")
	obj.AddComponent(&probe{log: &log})
	obj.AddComponent(&BaseComponent{})
	other := NewGameObject("Ammo")

	obj.OnMouseOver()
	obj.OnMouseOut()
	obj.notifyCollisionEnter(other)
	obj.destroy()
	obj.destroy()
	obj.notifyCollisionEnter(other)

	want := []string{"over", "out", "hit Ammo", "destroy"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if !obj.Destroyed() {
		t.Error("Destroyed should report true after destroy")
	}
}

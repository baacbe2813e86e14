package category_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	category "github.com/okian/dugout/internal/domain/category"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewSet(t *testing.T) {
	Convey("Given category definitions", t, func() {
		defs := []category.Definition{
			{Name: "HR", Direction: category.HigherIsBetter, Group: category.GroupBatting},
			{Name: "ERA", Direction: category.LowerIsBetter, Group: category.GroupPitching},
		}

		Convey("When building a set", func() {
			set, err := category.NewSet(defs)

			Convey("Then lookups resolve regardless of spelling noise", func() {
				So(err, ShouldBeNil)
				So(set.Len(), ShouldEqual, 2)

				for _, spelling := range []string{"HR", "hr", "h_r", "H.R", " HR "} {
					def, ok := set.Lookup(spelling)
					So(ok, ShouldBeTrue)
					So(def.Name, ShouldEqual, "HR")
				}
			})

			Convey("Then canonical resolution preserves registration spelling", func() {
				So(err, ShouldBeNil)
				name, err := set.Canonical("era")
				So(err, ShouldBeNil)
				So(name, ShouldEqual, "ERA")
			})

			Convey("Then unknown names fail", func() {
				So(err, ShouldBeNil)
				_, cErr := set.Canonical("OPS+")
				So(cErr, ShouldNotBeNil)
				So(cErr.Error(), ShouldContainSubstring, "unknown category")
			})
		})

		Convey("When two definitions fold to the same key", func() {
			_, err := category.NewSet([]category.Definition{
				{Name: "HR", Group: category.GroupBatting},
				{Name: "H.R", Group: category.GroupBatting},
			})

			Convey("Then construction fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When a definition has an empty name", func() {
			_, err := category.NewSet([]category.Definition{{Name: "  "}})

			Convey("Then construction fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When registering aliases", func() {
			set, err := category.NewSet(defs, category.WithAliases(map[string]string{
				"HR.1": "ERA",
			}))

			Convey("Then the alias resolves to its target", func() {
				So(err, ShouldBeNil)
				def, ok := set.Lookup("HR.1")
				So(ok, ShouldBeTrue)
				So(def.Name, ShouldEqual, "ERA")
			})
		})

		Convey("When an alias folds onto another category's name", func() {
			_, err := category.NewSet(defs, category.WithAliases(map[string]string{
				"H_R": "ERA",
			}))

			Convey("Then construction fails instead of rerouting the category", func() {
				So(errors.Is(err, category.ErrDuplicateCategory), ShouldBeTrue)
			})
		})

		Convey("When an alias folds onto its own target", func() {
			set, err := category.NewSet(defs, category.WithAliases(map[string]string{
				"E.R.A.": "ERA",
			}))

			Convey("Then the spelling still resolves", func() {
				So(err, ShouldBeNil)
				def, ok := set.Lookup("E.R.A.")
				So(ok, ShouldBeTrue)
				So(def.Name, ShouldEqual, "ERA")
			})
		})

		Convey("When an alias targets an unknown category", func() {
			_, err := category.NewSet(defs, category.WithAliases(map[string]string{
				"X.1": "NOPE",
			}))

			Convey("Then construction fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestDefaultSet(t *testing.T) {
	Convey("Given the default category set", t, func() {
		set := category.DefaultSet()

		Convey("Then it holds the full batting and pitching tables", func() {
			var batting, pitching int
			for _, def := range set.Definitions() {
				switch def.Group {
				case category.GroupBatting:
					batting++
				case category.GroupPitching:
					pitching++
				}
			}
			So(batting, ShouldEqual, 37)
			So(pitching, ShouldEqual, 51)
			So(set.Len(), ShouldEqual, 88)
		})

		Convey("Then legacy suffixed spellings collapse onto pitching categories", func() {
			def, ok := set.Lookup("HR.1")
			So(ok, ShouldBeTrue)
			So(def.Name, ShouldEqual, "HRA")
			So(def.Group, ShouldEqual, category.GroupPitching)

			def, ok = set.Lookup("K.1")
			So(ok, ShouldBeTrue)
			So(def.Name, ShouldEqual, "SO")
		})

		Convey("Then ratio categories rank low-first", func() {
			for _, name := range []string{"ERA", "WHIP", "HRA"} {
				def, ok := set.Lookup(name)
				So(ok, ShouldBeTrue)
				So(def.Direction, ShouldEqual, category.LowerIsBetter)
			}
		})

		Convey("Then counting categories rank high-first", func() {
			for _, name := range []string{"HR", "RBI", "SB", "SO"} {
				def, ok := set.Lookup(name)
				So(ok, ShouldBeTrue)
				So(def.Direction, ShouldEqual, category.HigherIsBetter)
			}
		})
	})
}

func TestLoadSet(t *testing.T) {
	Convey("Given a category file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "categories.yaml")
		doc := `- name: HR
  group: batting
  direction: higher
- name: ERA
  group: pitching
  direction: lower
`
		So(os.WriteFile(path, []byte(doc), 0o600), ShouldBeNil)

		Convey("When loading it", func() {
			set, err := category.LoadSet(path)

			Convey("Then the set mirrors the file", func() {
				So(err, ShouldBeNil)
				So(set.Len(), ShouldEqual, 2)

				def, ok := set.Lookup("ERA")
				So(ok, ShouldBeTrue)
				So(def.Direction, ShouldEqual, category.LowerIsBetter)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := category.LoadSet(filepath.Join(dir, "missing.yaml"))

			Convey("Then loading fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

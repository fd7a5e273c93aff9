package namingutils

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestIsAllCapsUnderscoresDigits(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IsAllCapsUnderscoresDigits("FOO_BAR_2")))
	qt.Assert(t, qt.IsFalse(IsAllCapsUnderscoresDigits("FOO_bar")))
}

func TestAllUnderscoresFollowedByDigits(t *testing.T) {
	qt.Assert(t, qt.IsTrue(AllUnderscoresFollowedByDigits("")))
	qt.Assert(t, qt.IsTrue(AllUnderscoresFollowedByDigits("_1_2")))
	qt.Assert(t, qt.IsFalse(AllUnderscoresFollowedByDigits("_1_")))
	qt.Assert(t, qt.IsFalse(AllUnderscoresFollowedByDigits("_x")))
}

func TestIsUpperCamelCaseWithDigits(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IsUpperCamelCaseWithDigits("")))
	qt.Assert(t, qt.IsTrue(IsUpperCamelCaseWithDigits("FooBar")))
	qt.Assert(t, qt.IsTrue(IsUpperCamelCaseWithDigits("Foo_2Bar_3")))
	qt.Assert(t, qt.IsFalse(IsUpperCamelCaseWithDigits("fooBar")))
	qt.Assert(t, qt.IsFalse(IsUpperCamelCaseWithDigits("Foo_bar")))
}

func TestIsLowerSnakeCaseWithDigits(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IsLowerSnakeCaseWithDigits("")))
	qt.Assert(t, qt.IsTrue(IsLowerSnakeCaseWithDigits("foo_bar_2")))
	qt.Assert(t, qt.IsFalse(IsLowerSnakeCaseWithDigits("Foo_bar")))
	qt.Assert(t, qt.IsFalse(IsLowerSnakeCaseWithDigits("foo-bar")))
}

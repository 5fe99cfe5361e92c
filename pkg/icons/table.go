// Copyright 2025 beachfall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package icons holds the fixed emoji-to-SVG-icon replacement table applied to
// the Forgeon web client source. The table is build-time data: the symbol set,
// the icon paths and the surrounding literals must stay in exact sync with
// script.js, or the replacements land in the wrong place.
package icons

import (
	"fmt"

	"github.com/beachfall/Forgeon/pkg/text"
)

// 🎯 TargetFile is the file this pass rewrites, relative to the web root
const TargetFile = "script.js"

// 🔍 fileGlob scopes every rule to JavaScript sources
const fileGlob = "*.js"

// ⚙️ GearSymbol appears both as a decorative glyph and inside quoted string
// values used as keys elsewhere in script.js, so it gets context rules plus a
// catch-all instead of a blanket replacement
const GearSymbol = "⚙️"

// GearMarkup is the image tag substituted for GearSymbol
var GearMarkup = markup("navigation/mechanics.svg", 14)

// 📝 markup renders the image tag for an icon asset at the given square size
func markup(path string, size int) string {
	return fmt.Sprintf(`<img src="icons/%s" alt="" width="%d" height="%d" style="vertical-align: middle;">`, path, size, size)
}

// rule builds a JS-scoped replacement rule
func rule(from, to string) text.ReplacementRule {
	return text.ReplacementRule{
		FromText:       from,
		ToText:         to,
		FileFilterGlob: fileGlob,
	}
}

// 📋 GenericRules returns the ordered symbol→markup pairs replaced globally,
// with no regard for surrounding context
func GenericRules() []text.ReplacementRule {
	return []text.ReplacementRule{
		rule("🔗", markup("misc/link.svg", 14)),
		rule("📌", markup("status/pin.svg", 14)),
		rule("💾", markup("actions/save.svg", 14)),
		rule("📥", markup("actions/download.svg", 14)),
		rule("📊", markup("misc/chart-line-up.svg", 14)),
		rule("📈", markup("misc/chart-line-up.svg", 14)),
		rule("📉", markup("misc/chart-line-down.svg", 14)),
		rule("💡", markup("misc/lightbulb.svg", 14)),
		rule("📂", markup("misc/folder.svg", 14)),
		rule("📋", markup("misc/checklist.svg", 14)),
		rule("🧮", markup("misc/calculator.svg", 14)),
		rule("🎯", markup("misc/gameplay.svg", 14)),
		rule("⚔️", markup("misc/combat.svg", 14)),
		rule("✏️", markup("actions/pencil.svg", 14)),
		rule("🗑️", markup("actions/trash.svg", 14)),
		rule("✨", markup("misc/sparkles.svg", 14)),
		rule("📍", markup("story/location.svg", 14)),
		rule("👥", markup("misc/user.svg", 14)),
		rule("⏱️", markup("misc/calendar.svg", 14)),
		rule("💭", markup("misc/thought-bubble.svg", 14)),
		rule("➕", markup("actions/add.svg", 14)),
		rule("➖", markup("misc/subtract.svg", 14)),
		rule("⚖️", markup("misc/scales-balance.svg", 16)),
		rule("🖥️", markup("misc/ui.svg", 14)),
		rule("⚛️", markup("misc/physics.svg", 14)),
	}
}

// 🔧 GearContextRules returns the constrained rules for GearSymbol. Each
// FromText is the exact literal from script.js; only the gear inside it is
// rewritten and the rest of the literal is preserved. The typeIcon rule keeps
// the 🎭 theme branch untouched on purpose. These must run before the
// catch-all, or the generic replacement corrupts the quoted values.
func GearContextRules() []text.ReplacementRule {
	return []text.ReplacementRule{
		rule(
			`icon: '⚙️'`,
			`icon: '`+GearMarkup+`'`,
		),
		rule(
			`mechanic: '⚙️ Mechanics'`,
			`mechanic: '`+GearMarkup+` Mechanics'`,
		),
		rule(
			`: '⚙️ Instance</span>'`,
			`: '`+GearMarkup+` Instance</span>'`,
		),
		rule(
			`const typeIcon = cls.classType === 'character' ? '🎭' : '⚙️';`,
			`const typeIcon = cls.classType === 'character' ? '🎭' : '`+GearMarkup+`';`,
		),
	}
}

// GearCatchAllRule replaces any gear the context rules did not cover, so no
// raw occurrence survives the pass
func GearCatchAllRule() text.ReplacementRule {
	return rule(GearSymbol, GearMarkup)
}

// 🚫 ExcludedSymbols returns the glyphs that are never replaced: status and
// severity markers, ranking medals, the 🎭 theme glyph and the 💥 explosion
// glyph all carry meaning of their own in the client
func ExcludedSymbols() []string {
	return []string{"🎭", "💥", "⚠️", "✅", "🔴", "🟠", "🟡", "🟢", "🥇", "🥈", "🥉"}
}

// Package rose implements the daily update rules for the shop inventory.
//
// Each simulated day every item is classified from its name into a
// category (normal, aged brie, backstage pass, legendary) with an optional
// conjured modifier, and its quality and sell_in are advanced by the rules
// of that category. Quality is bounded to [0, 50] by saturating clamps on
// the way up and down; sell_in saturates at the minimum int32 value.
//
// Example:
//
//	shop := rose.NewShop([]types.Item{
//	    types.NewItem("Aged Brie", 2, 0),
//	    types.NewItem("Conjured Mana Cake", 3, 6),
//	})
//	shop.UpdateQuality()
//
// UpdateQuality never fails. UpdateQualityStrict checks preconditions first
// and panics on misuse; use it in tests and development runs.
package rose

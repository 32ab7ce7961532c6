// Package fitness holds the pure calculations behind the calorie-burn
// calculator and meal nutrition summaries.
//
// Everything here is stateless: EstimateBurn turns an activity's MET factor,
// a body weight and a duration into kilocalories, and Aggregate folds a list
// of food items into a total and a macro percentage breakdown. Callers own
// any persistence and any user-facing validation messages.
package fitness

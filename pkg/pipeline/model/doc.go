// Package model provides the data structures shared between the pipeline
// package and its options. It describes stages as seen by observers such as
// the drawer and the measure, without exposing how they are executed.
package model

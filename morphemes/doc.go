/*
Package morphemes is responsible for picking one of the installed Korean morpheme analyzers and for putting back
whitespace the analyzers throw away.

Analyzers are external programs (mecab-ko executable, konlpy or pecab running under Python) and differ by OS and
by how they were packaged. Resolver goes over an ordered list of adapters and keeps the first one which starts and
is able to analyze a canary string. RestoreSpacing reconciles analyzer output with original text.

Spacing restoration logic follows PororoMecabKoTokenizer from Pororo by kakaobrain.
*/
package morphemes

/*
Package mecab provides adapters for Korean morpheme analyzers found in the wild and their preferred order.

Full tagging is done by mecab-ko dictionary based analyzers: mecab-ko executable, konlpy Mecab class, mecab-ko-msvc
build for Windows (only usable through node traversal) and konlpy on Windows with dictionary in its default
location. Plain tagging is done by pecab, pure python mecab-ko reimplementation.

Python packages are driven by running interpreter with small bridge script and exchanging UTF-8 text and JSON.
*/
package mecab

// imageutil パッケージは画像の縦結合のためのユーティリティを提供します
package imageutil

// このファイルは、imageutil パッケージのエントリーポイントとして機能し、
// 各ファイルに分割された機能へのアクセスポイントを提供します。
//
// 機能は以下のファイルに分割されています：
// - stacker.go: 読み込み・結合・保存の一連の処理
// - compose.go: キャンバスの寸法計算と画像の貼り付け
// - imageloader.go: 画像の読み込み・保存
// - errors.go: エラー定義
